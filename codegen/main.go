package main

import (
	"fmt"
	"os"
	"strings"
)

const maxArity = 9

func typeParams(n int) string {
	params := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		params = append(params, fmt.Sprintf("T%d", i))
	}
	return strings.Join(params, ", ")
}

func tupleType(n int) string {
	return fmt.Sprintf("Tuple%d[%s]", n, typeParams(n))
}

func memberNames(n int) string {
	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		names = append(names, fmt.Sprintf("r%d.name", i))
	}
	return strings.Join(names, ", ")
}

func generateTuple(n int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("// Tuple%d is the value of a resolved %d-member group\n", n, n))
	sb.WriteString(fmt.Sprintf("type Tuple%d[%s any] struct {\n", n, typeParams(n)))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\tV%d T%d\n", i, i))
	}
	sb.WriteString("}\n\n")

	return sb.String()
}

func generateGroup(n int) string {
	var sb strings.Builder
	tt := tupleType(n)

	sb.WriteString(fmt.Sprintf("// Group%d resolves %d sibling resolvers sharing one World and error domain\n", n, n))
	sb.WriteString("// as a single unit, strictly left to right; the first failure aborts the\n")
	sb.WriteString("// remaining members and is returned unchanged.\n")
	sb.WriteString(fmt.Sprintf("func Group%d[W any, E error, %s any](\n", n, typeParams(n)))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\tr%d Resolver[W, E, T%d],\n", i, i))
	}
	sb.WriteString("\topts ...Option,\n")
	sb.WriteString(fmt.Sprintf(") Resolver[W, E, %s] {\n", tt))
	sb.WriteString(fmt.Sprintf("\to := buildOptions(groupName(%s), opts)\n", memberNames(n)))
	sb.WriteString(fmt.Sprintf("\treturn Resolver[W, E, %s]{\n", tt))
	sb.WriteString("\t\tname: o.name,\n")
	sb.WriteString(fmt.Sprintf("\t\tresolve: func(rc *resolveCtx, w *W) (%s, error) {\n", tt))
	sb.WriteString(fmt.Sprintf("\t\t\tvar out %s\n", tt))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\t\t\tv%d, err := r%d.resolve(rc.child(), w)\n", i, i))
		sb.WriteString("\t\t\tif err != nil {\n")
		sb.WriteString("\t\t\t\treturn out, err\n")
		sb.WriteString("\t\t\t}\n")
	}
	sb.WriteString(fmt.Sprintf("\t\t\treturn runStep(rc, o.name, OpGroup, func() (%s, error) {\n", tt))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\t\t\t\tout.V%d = v%d\n", i, i))
	}
	sb.WriteString("\t\t\t\treturn out, nil\n")
	sb.WriteString("\t\t\t})\n")
	sb.WriteString("\t\t},\n")
	sb.WriteString("\t}\n")
	sb.WriteString("}\n\n")

	return sb.String()
}

func generateAsyncGroup(n int) string {
	var sb strings.Builder
	tt := tupleType(n)

	sb.WriteString(fmt.Sprintf("// AsyncGroup%d is Group%d for async resolvers. Members still resolve\n", n, n))
	sb.WriteString("// sequentially, left to right; cancellation is checked before each member.\n")
	sb.WriteString(fmt.Sprintf("func AsyncGroup%d[W any, E error, %s any](\n", n, typeParams(n)))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\tr%d AsyncResolver[W, E, T%d],\n", i, i))
	}
	sb.WriteString("\topts ...Option,\n")
	sb.WriteString(fmt.Sprintf(") AsyncResolver[W, E, %s] {\n", tt))
	sb.WriteString(fmt.Sprintf("\to := buildOptions(groupName(%s), opts)\n", memberNames(n)))
	sb.WriteString(fmt.Sprintf("\treturn AsyncResolver[W, E, %s]{\n", tt))
	sb.WriteString("\t\tname: o.name,\n")
	sb.WriteString(fmt.Sprintf("\t\tresolve: func(rc *resolveCtx, w *W) (%s, error) {\n", tt))
	sb.WriteString(fmt.Sprintf("\t\t\tvar out %s\n", tt))
	for i := 1; i <= n; i++ {
		sb.WriteString("\t\t\tif err := rc.ctx.Err(); err != nil {\n")
		sb.WriteString("\t\t\t\treturn out, err\n")
		sb.WriteString("\t\t\t}\n")
		sb.WriteString(fmt.Sprintf("\t\t\tv%d, err := r%d.resolve(rc.child(), w)\n", i, i))
		sb.WriteString("\t\t\tif err != nil {\n")
		sb.WriteString("\t\t\t\treturn out, err\n")
		sb.WriteString("\t\t\t}\n")
	}
	sb.WriteString(fmt.Sprintf("\t\t\treturn runStep(rc, o.name, OpGroup, func() (%s, error) {\n", tt))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\t\t\t\tout.V%d = v%d\n", i, i))
	}
	sb.WriteString("\t\t\t\treturn out, nil\n")
	sb.WriteString("\t\t\t})\n")
	sb.WriteString("\t\t},\n")
	sb.WriteString("\t}\n")
	sb.WriteString("}\n\n")

	return sb.String()
}

func generateParallelGroup(n int) string {
	var sb strings.Builder
	tt := tupleType(n)

	sb.WriteString(fmt.Sprintf("// ParallelGroup%d resolves %d members concurrently. This deliberately\n", n, n))
	sb.WriteString(fmt.Sprintf("// relaxes the left-to-right ordering contract of AsyncGroup%d: members'\n", n))
	sb.WriteString("// side effects may interleave. The first failure cancels the remaining\n")
	sb.WriteString("// members' contexts and is returned; the tuple keeps declaration order.\n")
	sb.WriteString(fmt.Sprintf("func ParallelGroup%d[W any, E error, %s any](\n", n, typeParams(n)))
	for i := 1; i <= n; i++ {
		sb.WriteString(fmt.Sprintf("\tr%d AsyncResolver[W, E, T%d],\n", i, i))
	}
	sb.WriteString("\topts ...Option,\n")
	sb.WriteString(fmt.Sprintf(") AsyncResolver[W, E, %s] {\n", tt))
	sb.WriteString(fmt.Sprintf("\to := buildOptions(groupName(%s), opts)\n", memberNames(n)))
	sb.WriteString(fmt.Sprintf("\treturn AsyncResolver[W, E, %s]{\n", tt))
	sb.WriteString("\t\tname: o.name,\n")
	sb.WriteString(fmt.Sprintf("\t\tresolve: func(rc *resolveCtx, w *W) (%s, error) {\n", tt))
	sb.WriteString(fmt.Sprintf("\t\t\tvar out %s\n", tt))
	sb.WriteString("\t\t\tg, gctx := errgroup.WithContext(rc.ctx)\n")
	for i := 1; i <= n; i++ {
		sb.WriteString("\t\t\tg.Go(func() error {\n")
		sb.WriteString(fmt.Sprintf("\t\t\t\tv, err := r%d.resolve(rc.branch(gctx), w)\n", i))
		sb.WriteString("\t\t\t\tif err != nil {\n")
		sb.WriteString("\t\t\t\t\treturn err\n")
		sb.WriteString("\t\t\t\t}\n")
		sb.WriteString(fmt.Sprintf("\t\t\t\tout.V%d = v\n", i))
		sb.WriteString("\t\t\t\treturn nil\n")
		sb.WriteString("\t\t\t})\n")
	}
	sb.WriteString("\t\t\tif err := g.Wait(); err != nil {\n")
	sb.WriteString(fmt.Sprintf("\t\t\t\treturn %s{}, err\n", tt))
	sb.WriteString("\t\t\t}\n")
	sb.WriteString(fmt.Sprintf("\t\t\treturn runStep(rc, o.name, OpGroup, func() (%s, error) {\n", tt))
	sb.WriteString("\t\t\t\treturn out, nil\n")
	sb.WriteString("\t\t\t})\n")
	sb.WriteString("\t\t},\n")
	sb.WriteString("\t}\n")
	sb.WriteString("}\n\n")

	return sb.String()
}

func generateSyncFile() string {
	var sb strings.Builder

	sb.WriteString("package jedi\n\n")
	sb.WriteString("//go:generate go run codegen/main.go -w\n\n")
	for n := 2; n <= maxArity; n++ {
		sb.WriteString(generateTuple(n))
	}
	for n := 2; n <= maxArity; n++ {
		sb.WriteString(generateGroup(n))
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func generateAsyncFile() string {
	var sb strings.Builder

	sb.WriteString("package jedi\n\n")
	sb.WriteString("import \"golang.org/x/sync/errgroup\"\n\n")
	for n := 2; n <= maxArity; n++ {
		sb.WriteString(generateAsyncGroup(n))
	}
	for n := 2; n <= maxArity; n++ {
		sb.WriteString(generateParallelGroup(n))
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func main() {
	write := len(os.Args) > 1 && os.Args[1] == "-w"

	files := map[string]string{
		"group_generated.go":       generateSyncFile(),
		"async_group_generated.go": generateAsyncFile(),
	}

	for name, content := range files {
		if !write {
			fmt.Printf("// ---- %s ----\n%s", name, content)
			continue
		}
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}
