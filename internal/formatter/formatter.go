// package formatter renders library exports (CSV, Markdown, plain text), order receipts and display values
package formatter

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/cinevault/internal/checkout"
	"github.com/desertthunder/cinevault/internal/library"
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as US dollars, e.g. "$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	whole, cents, _ := strings.Cut(amount.StringFixed(2), ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	return fmt.Sprintf("%s$%s.%s", sign, grouped.String(), cents)
}

// FormatRuntime renders minutes as "2h 46m". Runtimes under an hour omit the hours.
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatDate renders t as "Jan 2, 2006", or "-" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// LibraryToCSV converts library entries to CSV with columns: ID, Title, Year, Genres, Runtime, Director, Purchased
func LibraryToCSV(entries []library.Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Year", "Genres", "Runtime", "Director", "Purchased"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.Movie.ID),
			e.Movie.Title,
			strconv.Itoa(e.Movie.Year()),
			strings.Join(e.Movie.Genres, "; "),
			strconv.Itoa(e.Movie.Runtime),
			e.Movie.Director,
			e.PurchasedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// LibraryToMarkdown renders the library as a Markdown document.
// posters maps movie ids to image paths relative to the document; missing ids get no image.
func LibraryToMarkdown(owner string, entries []library.Entry, posters map[int]string) ([]byte, error) {
	var buf bytes.Buffer

	if owner != "" {
		buf.WriteString(fmt.Sprintf("# %s's Movies\n\n", owner))
	} else {
		buf.WriteString("# My Movies\n\n")
	}
	buf.WriteString(fmt.Sprintf("**Titles**: %d\n\n", len(entries)))

	for i, e := range entries {
		m := e.Movie
		buf.WriteString(fmt.Sprintf("## %d. %s (%d)\n\n", i+1, m.Title, m.Year()))
		if path, ok := posters[m.ID]; ok {
			buf.WriteString(fmt.Sprintf("![%s](%s)\n\n", m.Title, path))
		}
		buf.WriteString(fmt.Sprintf("- **Director**: %s\n", m.Director))
		if len(m.Starring) > 0 {
			buf.WriteString(fmt.Sprintf("- **Starring**: %s\n", strings.Join(m.Starring, ", ")))
		}
		buf.WriteString(fmt.Sprintf("- **Genres**: %s\n", strings.Join(m.Genres, ", ")))
		buf.WriteString(fmt.Sprintf("- **Runtime**: %s\n", FormatRuntime(m.Runtime)))
		buf.WriteString(fmt.Sprintf("- **Purchased**: %s\n\n", FormatDate(e.PurchasedAt)))
		if m.Overview != "" {
			buf.WriteString(m.Overview + "\n\n")
		}
	}

	return buf.Bytes(), nil
}

// LibraryToText converts library entries to plain text format
func LibraryToText(entries []library.Entry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("My Movies: %d\n\n", len(entries)))
	for i, e := range entries {
		buf.WriteString(fmt.Sprintf("%d. %s (%d) [%s] purchased %s\n",
			i+1, e.Movie.Title, e.Movie.Year(), FormatRuntime(e.Movie.Runtime), FormatDate(e.PurchasedAt)))
	}

	return buf.Bytes(), nil
}

// CartToText renders cart lines followed by the priced summary.
func CartToText(lines []models.LineItem, summary checkout.Summary) []byte {
	var buf bytes.Buffer

	if len(lines) == 0 {
		buf.WriteString("Your cart is empty\n")
		return buf.Bytes()
	}

	for _, l := range lines {
		buf.WriteString(fmt.Sprintf("%3d  %-40s x%-3d %10s\n", l.Movie.ID, l.Movie.Title, l.Quantity, FormatCurrency(l.Subtotal())))
	}
	writeSummary(&buf, summary)

	return buf.Bytes()
}

// OrderReceipt renders the confirmation shown after checkout.
func OrderReceipt(order *checkout.Order) []byte {
	var buf bytes.Buffer

	buf.WriteString("Order Confirmation\n")
	buf.WriteString(fmt.Sprintf("Order:    %s\n", order.Number))
	buf.WriteString(fmt.Sprintf("Date:     %s\n", order.PlacedAt.Format("January 2, 2006")))
	buf.WriteString(fmt.Sprintf("Customer: %s <%s>\n", order.Customer.FullName, order.Customer.Email))
	if order.CardLast4 != "" {
		buf.WriteString(fmt.Sprintf("Card:     **** %s\n", order.CardLast4))
	}
	buf.WriteString("\n")

	for _, l := range order.Lines {
		buf.WriteString(fmt.Sprintf("  %-40s x%-3d %10s\n", l.Movie.Title, l.Quantity, FormatCurrency(l.Subtotal())))
	}
	writeSummary(&buf, order.Summary)

	return buf.Bytes()
}

func writeSummary(buf *bytes.Buffer, s checkout.Summary) {
	buf.WriteString(strings.Repeat("-", 60) + "\n")
	buf.WriteString(fmt.Sprintf("%-48s %11s\n", "Subtotal", FormatCurrency(s.Subtotal)))
	buf.WriteString(fmt.Sprintf("%-48s %11s\n", "Tax", FormatCurrency(s.Tax)))
	buf.WriteString(fmt.Sprintf("%-48s %11s\n", "Total", FormatCurrency(s.Total)))
}

// DownloadImage downloads an image from the given URL and returns the raw bytes.
// The request is abandoned when ctx is done.
func DownloadImage(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// LibraryMetadata summarizes an export without the per-title rows.
type LibraryMetadata struct {
	Owner      string    `json:"owner"`
	Titles     int       `json:"titles"`
	Genres     []string  `json:"genres"`
	ExportedAt time.Time `json:"exported_at"`
}

// ToMetadataJSON generates a JSON representation of library metadata (without titles)
func ToMetadataJSON(meta LibraryMetadata) ([]byte, error) {
	return shared.MarshalJSON(meta, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	LibraryFile  string
	MetadataFile string
}

// WriteCSVExport exports the library to CSV with an accompanying metadata JSON file.
//
// Defaults to "library" as the base filename & creates {base}_library.csv and {base}_metadata.json
func WriteCSVExport(owner string, lib *library.Library, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "library"
	}

	csvData, err := LibraryToCSV(lib.Entries())
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	libraryFile := baseFilepath + "_library.csv"
	if err := os.WriteFile(libraryFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(LibraryMetadata{
		Owner:      owner,
		Titles:     lib.Len(),
		Genres:     lib.Genres(),
		ExportedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		LibraryFile:  libraryFile,
		MetadataFile: metadataFile,
	}, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory string
	Files     []string
	Posters   []string
}

// WriteMarkdownExport exports the library to Markdown in a dedicated directory.
//
// Directory name defaults to "library". posters maps movie ids to image paths relative to the directory,
// as written by tasks.FetchPosters; movies without an entry are rendered without an image.
func WriteMarkdownExport(owner string, lib *library.Library, outputDir string, posters map[int]string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = "library"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	for _, e := range lib.Entries() {
		if rel, ok := posters[e.Movie.ID]; ok {
			result.Posters = append(result.Posters, filepath.Join(outputDir, rel))
		}
	}

	mdData, err := LibraryToMarkdown(owner, lib.Entries(), posters)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}

// WriteTextExport exports the library to plain text format.
//
// Defaults to library.txt as the filename.
func WriteTextExport(lib *library.Library, path string) (string, error) {
	if path == "" {
		path = "library.txt"
	}

	textData, err := LibraryToText(lib.Entries())
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(path, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return path, nil
}
