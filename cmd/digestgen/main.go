// digestgen generates the pre-rendered daily risk digest files consumed by
// the dashboard backend.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/riskdigest/digest-backend/internal/digest"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()

	digestsDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "digestgen",
		Short: "Generate and inspect daily risk digests",
	}
	rootCmd.PersistentFlags().StringVar(&digestsDir, "dir", "./digests", "digests directory")

	rootCmd.AddCommand(newGenerateCmd(), newListCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the digest for a date (default today)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			store := digest.NewStore(digestsDir)
			if store.Exists(date) {
				fmt.Printf("%s Digest for %s already exists. Skipping generation.\n", yellow("»"), date)
				return nil
			}

			gen, err := digest.NewGenerator()
			if err != nil {
				return err
			}
			d, err := gen.Generate(date)
			if err != nil {
				return err
			}
			if err := store.Save(d); err != nil {
				return err
			}

			fmt.Printf("%s Generated digest for %s: %q (%d items)\n",
				green("✓"), d.Date, d.Headline, len(d.DigestItems))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "digest date (YYYY-MM-DD)")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List generated digests",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store := digest.NewStore(digestsDir)
			index := store.Index()
			if len(index) == 0 {
				fmt.Println("No digests found.")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Date", "Headline", "Items"})
			for _, date := range index {
				d, err := store.Load(date)
				if err != nil {
					table.Append([]string{date, "(unreadable)", "-"})
					continue
				}
				table.Append([]string{d.Date, d.Headline, strconv.Itoa(len(d.DigestItems))})
			}
			table.Render()
			return nil
		},
	}
}
