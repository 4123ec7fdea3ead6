package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/itemcsv"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import items from a CSV export",
	Long:  `Import every row of a spreadsheet CSV export. Lines above the header row are ignored and rows without a Platform or Title are skipped.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all items as CSV",
	Long:  `Write the full catalog as CSV, oldest item first, with the spreadsheet column labels as header.`,
	RunE:  runExport,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items matching filters",
	RunE:  runList,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE:  runStats,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	listCmd.Flags().String("platform", "", "Platform filter")
	listCmd.Flags().String("ip", "", "Intellectual property filter")
	listCmd.Flags().String("category", "", "Category filter")
	listCmd.Flags().String("type", "", "Type filter")
	listCmd.Flags().String("collection", "", "Collection filter")
	listCmd.Flags().String("series", "", "Series filter")
	listCmd.Flags().String("artist", "", "Artist filter")
	listCmd.Flags().String("rarity", "", "Rarity filter")
	listCmd.Flags().StringP("search", "s", "", "Free-text search")
	listCmd.Flags().Bool("json", false, "Print items as JSON")

	statsCmd.Flags().Bool("json", false, "Print statistics as JSON")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	rows, err := itemcsv.Decode(string(data))
	if err != nil {
		return err
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	result, err := sess.service.Import(cmd.Context(), itemcsv.ToFieldsList(rows))
	if result != nil {
		printImportResult(cmd.OutOrStdout(), result)
	}
	return err
}

func printImportResult(w io.Writer, result *domain.ImportResult) {
	fmt.Fprintf(w, "Imported %d items, skipped %d rows\n", len(result.Imported), len(result.Skipped))
	for _, skipped := range result.Skipped {
		fmt.Fprintf(w, "  row %d: %s\n", skipped.Row, skipped.Reason)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	items, err := sess.service.Export(cmd.Context())
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return itemcsv.EncodeItems(cmd.OutOrStdout(), items)
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := itemcsv.EncodeItems(file, items); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d items to %s\n", len(items), output)
	return nil
}

func filterFromFlags(cmd *cobra.Command) domain.Filter {
	get := func(name string) string {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return domain.Filter{
		Platform:             get("platform"),
		IntellectualProperty: get("ip"),
		Category:             get("category"),
		Type:                 get("type"),
		Collection:           get("collection"),
		Series:               get("series"),
		Artist:               get("artist"),
		Rarity:               get("rarity"),
		Search:               get("search"),
	}
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	items, err := sess.service.List(cmd.Context(), filterFromFlags(cmd))
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), items)
	}
	printItems(cmd.OutOrStdout(), items)
	return nil
}

func printItems(w io.Writer, items []*domain.VirtualItem) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPLATFORM\tCATEGORY\tTYPE\tRARITY")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", item.ID, item.Title, item.Platform, item.Category, item.Type, item.Rarity)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d items\n", len(items))
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	stats, err := sess.service.Stats(cmd.Context())
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), stats)
	}
	printStats(cmd.OutOrStdout(), stats)
	return nil
}

func printStats(w io.Writer, stats *domain.Stats) {
	fmt.Fprintf(w, "Total items: %d\n", stats.TotalItems)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nBy platform")
	for _, c := range stats.ByPlatform {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Platform, c.Count)
	}
	fmt.Fprintln(tw, "\nBy category")
	for _, c := range stats.ByCategory {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Category, c.Count)
	}
	fmt.Fprintln(tw, "\nBy rarity")
	for _, c := range stats.ByRarity {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Rarity, c.Count)
	}
	tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
