package outwriter

import (
	"fmt"
	"os"
	"strconv"

	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintCommitsTable prints the commit range as a human-readable table,
// or as JSON when the json format is selected.
func PrintCommitsTable(commits []schema.CommitRecord, cfg *contract.Config) error {
	if cfg.Format == schema.JSONOut {
		return WriteJSONPayload(commits, cfg.OutputFile)
	}

	if len(commits) == 0 {
		fmt.Printf("No commits found between %s and %s\n", cfg.BaseBranch, cfg.CurrentBranch)
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Hash", "Date", "Author", "Message", "+/-", "Impact"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxMsg := GetMaxMessageWidth(cfg.Width)
	var data [][]string
	for _, c := range commits {
		label := contract.GetPlainLabel(c.TotalLines())
		if cfg.UseColors {
			label = contract.GetColorLabel(c.TotalLines())
		}
		data = append(data, []string{
			c.Hash,
			c.Date,
			c.Author,
			contract.TruncateMessage(c.Message, maxMsg),
			fmt.Sprintf("+%d/-%d", c.Insertions, c.Deletions),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("\n📊 %d commits in range %s..%s\n", len(commits), cfg.BaseBranch, cfg.CurrentBranch)
	return nil
}

// PrintBucketsTable prints the bucketed changed files as a table, with the
// per-file change magnitude, or as JSON when the json format is selected.
func PrintBucketsTable(buckets map[string][]string, magnitude map[string]int, cfg *contract.Config) error {
	if cfg.Format == schema.JSONOut {
		return WriteJSONPayload(buckets, cfg.OutputFile)
	}

	if len(buckets) == 0 {
		fmt.Printf("No files changed between %s and %s\n", cfg.BaseBranch, cfg.CurrentBranch)
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Bucket", "File", "Lines"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	total := 0
	for _, bucket := range schema.BucketOrder(cfg.BucketRules) {
		for _, f := range buckets[bucket] {
			data = append(data, []string{bucket, f, strconv.Itoa(magnitude[f])})
			total++
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("\n📊 %d files changed in range %s..%s\n", total, cfg.BaseBranch, cfg.CurrentBranch)
	return nil
}
