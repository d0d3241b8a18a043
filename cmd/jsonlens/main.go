// Command jsonlens inspects and edits JSON or YAML documents through the
// library's composable accessors. Misses follow library semantics: get
// prints nothing and exits 1, set passes the document through unchanged.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reoring/jsonlens"
	"github.com/reoring/jsonlens/host/yamlhost"
)

var logger = log.New(os.Stderr)

func main() {
	var (
		inputFile string
		useYAML   bool
	)

	root := &cobra.Command{
		Use:           "jsonlens",
		Short:         "view and edit JSON or YAML documents through composable accessors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "read the document from a file instead of stdin")
	root.PersistentFlags().BoolVar(&useYAML, "yaml", false, "treat the document as YAML")

	get := &cobra.Command{
		Use:   "get <path>",
		Short: "print the value focused by path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(inputFile)
			if err != nil {
				return err
			}
			rep := pickRep(useYAML)
			o, err := compilePath(rep, args[0])
			if err != nil {
				return err
			}
			v, ok := o.Get(doc)
			if !ok {
				return fmt.Errorf("no value at %q", args[0])
			}
			os.Stdout.Write(rep.Encode(v))
			fmt.Println()
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <path> <json>",
		Short: "replace the value focused by path and print the document",
		Long:  "Replace the value focused by path and print the rewritten document.\nThe replacement is always a JSON literal, even in --yaml mode.\nAn absent path leaves the document unchanged; set never inserts.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(inputFile)
			if err != nil {
				return err
			}
			repl, ok := jsonlens.Bytes{}.Decode([]byte(args[1]))
			if !ok {
				return fmt.Errorf("replacement is not valid JSON: %q", args[1])
			}
			rep := pickRep(useYAML)
			o, err := compilePath(rep, args[0])
			if err != nil {
				return err
			}
			os.Stdout.Write(o.Set(doc, repl))
			fmt.Println()
			return nil
		},
	}

	root.AddCommand(get, set)
	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func pickRep(useYAML bool) jsonlens.Rep[[]byte] {
	if useYAML {
		return yamlhost.Bytes()
	}
	return jsonlens.Bytes{}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// compilePath turns a dotted path such as a.b[2].c into a composed optic
// over the chosen host representation. "." focuses the whole document.
func compilePath(rep jsonlens.Rep[[]byte], path string) (jsonlens.Optic[[]byte, jsonlens.Value], error) {
	o := jsonlens.AsValue(rep)
	if path == "" || path == "." {
		return o, nil
	}
	segs, err := splitPath(path)
	if err != nil {
		return o, err
	}
	tree := jsonlens.Tree{}
	for _, s := range segs {
		if s.isIndex {
			o = jsonlens.Compose(o, jsonlens.Nth(tree, s.index))
		} else {
			o = jsonlens.Compose(o, jsonlens.Key(tree, s.key))
		}
	}
	return o, nil
}

type segment struct {
	key     string
	index   int
	isIndex bool
}

func splitPath(path string) ([]segment, error) {
	var segs []segment
	i := 0
	expectKey := true
	for i < len(path) {
		switch {
		case path[i] == '.':
			if expectKey {
				return nil, fmt.Errorf("empty path segment at offset %d", i)
			}
			expectKey = true
			i++
		case path[i] == '[':
			j := i + 1
			n := 0
			neg := false
			if j < len(path) && path[j] == '-' {
				neg = true
				j++
			}
			start := j
			for j < len(path) && path[j] >= '0' && path[j] <= '9' {
				n = n*10 + int(path[j]-'0')
				j++
			}
			if j == start || j >= len(path) || path[j] != ']' {
				return nil, fmt.Errorf("malformed index at offset %d", i)
			}
			if neg {
				n = -n
			}
			segs = append(segs, segment{index: n, isIndex: true})
			expectKey = false
			i = j + 1
		default:
			j := i
			for j < len(path) && path[j] != '.' && path[j] != '[' {
				j++
			}
			segs = append(segs, segment{key: path[i:j]})
			expectKey = false
			i = j
		}
	}
	if expectKey {
		return nil, fmt.Errorf("path ends with a dangling separator")
	}
	return segs, nil
}
