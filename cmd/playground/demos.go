package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakif/go-examples/internal/animal"
	"github.com/sakif/go-examples/internal/async"
	"github.com/sakif/go-examples/internal/calc"
	"github.com/sakif/go-examples/internal/filemanager"
	"github.com/sakif/go-examples/internal/sliceutil"
	"github.com/sakif/go-examples/internal/strutil"
)

func newAsyncCmd(a *app) *cobra.Command {
	var delay time.Duration
	var count int

	cmd := &cobra.Command{
		Use:   "async",
		Short: "Compare sequential and parallel simulated fetches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.cfg.FetchDelay
			if cmd.Flags().Changed("delay") {
				d = delay
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			ids := make([]int, count)
			for i := range ids {
				ids[i] = i + 1
			}

			ctx := cmd.Context()
			f := async.NewFetcher(d, a.logger)
			w := cmd.OutOrStdout()

			start := time.Now()
			seq, err := f.Sequential(ctx, ids)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "sequential: %d users in %s\n", len(seq), time.Since(start).Round(time.Millisecond))

			start = time.Now()
			par, err := f.FetchMany(ctx, ids)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "parallel:   %d users in %s\n", len(par), time.Since(start).Round(time.Millisecond))

			for _, u := range par {
				fmt.Fprintf(w, "  %d %s <%s>\n", u.ID, u.Name, u.Email)
			}

			res := f.FetchSafe(ctx, 1)
			fmt.Fprintf(w, "safe fetch: success=%t status=%d\n", res.Success, res.StatusCode)
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "simulated latency per fetch (default from FETCH_DELAY or 1s)")
	cmd.Flags().IntVar(&count, "count", 3, "number of users to fetch")
	return cmd
}

func newArraysCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "arrays",
		Short: "Show the generic slice helpers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

			chunks, err := sliceutil.Chunk(nums, 3)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "chunk(3):     ", chunks)
			fmt.Fprintln(w, "flatten:      ", sliceutil.Flatten(chunks))
			fmt.Fprintln(w, "flattenDeep:  ", sliceutil.FlattenDeep([]any{1, []any{2, []any{3, []any{4}}}}))
			fmt.Fprintln(w, "unique:       ", sliceutil.Unique([]int{1, 2, 2, 3, 1, 4}))
			fmt.Fprintln(w, "even:         ", sliceutil.FilterEven(nums))
			fmt.Fprintln(w, "sum:          ", sliceutil.Sum(nums))
			fmt.Fprintln(w, "average:      ", sliceutil.Average(nums))
			hi, _ := sliceutil.Max(nums)
			lo, _ := sliceutil.Min(nums)
			fmt.Fprintln(w, "max/min:      ", hi, lo)

			rng := rand.New(rand.NewPCG(seed, seed))
			fmt.Fprintln(w, "shuffle:      ", sliceutil.Shuffle(nums, rng))

			words := []string{"pear", "fig", "banana", "kiwi", "apple"}
			fmt.Fprintln(w, "sortBy(len):  ", sliceutil.SortBy(words, func(s string) int { return len(s) }))
			groups := sliceutil.GroupBy(words, func(s string) int { return len(s) })
			for _, n := range []int{3, 4, 5, 6} {
				fmt.Fprintf(w, "group len=%d:   %v\n", n, groups[n])
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 42, "seed for the shuffle")
	return cmd
}

func newStringsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strings [text...]",
		Short: "Show the string helpers",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := "A man, a plan, a canal: Panama"
			if len(args) > 0 {
				text = strings.Join(args, " ")
			}
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "input:        %q\n", text)
			fmt.Fprintf(w, "capitalized:  %q\n", strutil.CapitalizeFirst(text))
			fmt.Fprintf(w, "reversed:     %q\n", strutil.Reverse(text))
			fmt.Fprintf(w, "palindrome:   %t\n", strutil.IsPalindrome(text))
			fmt.Fprintf(w, "random 1-100: %d\n", strutil.RandomInt(nil, 1, 100))

			counts := strutil.CountCharacters(text)
			fmt.Fprintf(w, "distinct:     %d\n", len(counts))

			// Three quick calls collapse into one.
			done := make(chan string, 1)
			d := strutil.Debounce(func(s string) { done <- s }, 50*time.Millisecond)
			for _, s := range []string{"g", "go", "gopher"} {
				d.Call(s)
			}
			fmt.Fprintf(w, "debounced:    %q\n", <-done)
			return nil
		},
	}
}

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Run the calculator examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "10 + 5 =", calc.Add(10, 5))
			fmt.Fprintln(w, "10 - 5 =", calc.Subtract(10, 5))
			fmt.Fprintln(w, "10 * 5 =", calc.Multiply(10, 5))
			result(w, "10 / 5 =")(calc.Divide(10, 5))
			result(w, "10 / 0 =")(calc.Divide(10, 0))
			fmt.Fprintln(w, "2 ^ 10 =", calc.Power(2, 10))
			result(w, "sqrt 16 =")(calc.Sqrt(16))
			result(w, "sqrt -1 =")(calc.Sqrt(-1))
			return nil
		},
	}
}

// result returns a printer that accepts a (value, error) pair directly, so
// result(w, label)(calc.Divide(a, b)) works without temporaries.
func result(w io.Writer, label string) func(float64, error) {
	return func(v float64, err error) {
		if err != nil {
			fmt.Fprintln(w, label, "error:", err)
			return
		}
		fmt.Fprintln(w, label, v)
	}
}

func newAnimalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "animals",
		Short: "Show interfaces and embedding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			dog := animal.NewDog("Buddy", "Golden Retriever")
			cat := animal.NewCat("Whiskers", "Orange")

			for _, line := range animal.Chorus(animal.NewGeneric("Generic", "Unknown"), dog, cat) {
				fmt.Fprintln(w, line)
			}
			fmt.Fprintln(w, dog.Fetch())
			fmt.Fprintln(w, cat.Scratch())
			return nil
		},
	}
}

func newFilesCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "files",
		Short: "Write and read back text, JSON and CSV files",
		Long:  "Writes sample files into --dir (a fresh temporary directory by default), reads them back and lists the directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				tmp, err := os.MkdirTemp("", "playground-files-")
				if err != nil {
					return err
				}
				defer os.RemoveAll(tmp)
				dir = tmp
			}
			return runFilesDemo(cmd.OutOrStdout(), filemanager.New(dir))
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to write into")
	return cmd
}

func runFilesDemo(w io.Writer, m *filemanager.Manager) error {
	if err := m.WriteText("notes.txt", "first line\n"); err != nil {
		return err
	}
	if err := m.AppendText("notes.txt", "second line\n"); err != nil {
		return err
	}
	text, err := m.ReadText("notes.txt")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "notes.txt: %q\n", text)

	settings := map[string]any{"theme": "dark", "fontSize": 14}
	if err := m.WriteJSON("settings.json", settings); err != nil {
		return err
	}
	var back map[string]any
	if err := m.ReadJSON("settings.json", &back); err != nil {
		return err
	}
	fmt.Fprintf(w, "settings.json: theme=%v fontSize=%v\n", back["theme"], back["fontSize"])

	rows := []map[string]string{
		{"name": "Alice", "role": "admin"},
		{"name": "Bob", "role": "user"},
	}
	if err := m.WriteCSV("people.csv", rows); err != nil {
		return err
	}
	people, err := m.ReadCSV("people.csv")
	if err != nil {
		return err
	}
	for _, p := range people {
		fmt.Fprintf(w, "people.csv: %s (%s)\n", p["name"], p["role"])
	}

	names, err := m.List("")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "files:", strings.Join(names, ", "))

	removed, err := m.Delete("notes.txt")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "deleted notes.txt: %t, still exists: %t\n", removed, m.Exists("notes.txt"))
	return nil
}
