package formatter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/cinevault/internal/catalog"
	"github.com/desertthunder/cinevault/internal/checkout"
	"github.com/desertthunder/cinevault/internal/library"
	"github.com/desertthunder/cinevault/internal/models"
	th "github.com/desertthunder/cinevault/internal/testing"
	"github.com/shopspring/decimal"
)

var purchased = time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)

func testLibrary() *library.Library {
	return library.Build([]models.Purchase{
		{MovieID: 1, PurchasedAt: purchased},
		{MovieID: 3, PurchasedAt: purchased},
	}, catalog.New(catalog.Seed()))
}

func TestDisplayValues(t *testing.T) {
	t.Run("FormatCurrency", func(t *testing.T) {
		tt := []struct {
			in   string
			want string
		}{
			{in: "0", want: "$0.00"},
			{in: "19.99", want: "$19.99"},
			{in: "54.97", want: "$54.97"},
			{in: "1234.5", want: "$1,234.50"},
			{in: "1000000", want: "$1,000,000.00"},
			{in: "-2.5", want: "-$2.50"},
		}

		for _, tc := range tt {
			if got := FormatCurrency(decimal.RequireFromString(tc.in)); got != tc.want {
				t.Errorf("FormatCurrency(%s) = %q, want %q", tc.in, got, tc.want)
			}
		}
	})

	t.Run("FormatRuntime", func(t *testing.T) {
		tt := []struct {
			in   int
			want string
		}{
			{in: 0, want: "0m"},
			{in: 45, want: "45m"},
			{in: 60, want: "1h 0m"},
			{in: 166, want: "2h 46m"},
		}

		for _, tc := range tt {
			if got := FormatRuntime(tc.in); got != tc.want {
				t.Errorf("FormatRuntime(%d) = %q, want %q", tc.in, got, tc.want)
			}
		}
	})

	t.Run("FormatDate", func(t *testing.T) {
		if got := FormatDate(purchased); got != "Mar 9, 2024" {
			t.Errorf("FormatDate() = %q", got)
		}
		if got := FormatDate(time.Time{}); got != "-" {
			t.Errorf("FormatDate(zero) = %q", got)
		}
	})
}

func TestExporters(t *testing.T) {
	lib := testLibrary()

	t.Run("LibraryToCSV", func(t *testing.T) {
		data, err := LibraryToCSV(lib.Entries())
		if err != nil {
			t.Fatalf("LibraryToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Title,Year,Genres,Runtime,Director,Purchased") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Dune: Part Two,2024,Science Fiction; Adventure,166,Denis Villeneuve,2024-03-09T18:00:00Z") {
			t.Errorf("CSV missing Dune row, got: %s", output)
		}
		if strings.Count(output, "\n") != 3 {
			t.Errorf("expected header plus 2 rows, got: %s", output)
		}
	})

	t.Run("LibraryToMarkdown", func(t *testing.T) {
		t.Run("without posters", func(t *testing.T) {
			data, err := LibraryToMarkdown("Demo User", lib.Entries(), nil)
			if err != nil {
				t.Fatalf("LibraryToMarkdown failed: %v", err)
			}

			output := string(data)
			for _, want := range []string{
				"# Demo User's Movies",
				"**Titles**: 2",
				"## 1. Dune: Part Two (2024)",
				"## 2. Oppenheimer (2023)",
				"- **Runtime**: 3h 0m",
				"- **Purchased**: Mar 9, 2024",
			} {
				if !strings.Contains(output, want) {
					t.Errorf("Markdown missing %q", want)
				}
			}
			if strings.Contains(output, "![") {
				t.Error("Markdown should not reference posters")
			}
		})

		t.Run("with posters", func(t *testing.T) {
			data, _ := LibraryToMarkdown("", lib.Entries(), map[int]string{3: "posters/3.jpg"})
			output := string(data)

			if !strings.Contains(output, "# My Movies") {
				t.Error("anonymous export should use the default heading")
			}
			if !strings.Contains(output, "![Oppenheimer](posters/3.jpg)") {
				t.Errorf("Markdown missing poster reference:\n%s", output)
			}
		})
	})

	t.Run("LibraryToText", func(t *testing.T) {
		data, err := LibraryToText(lib.Entries())
		if err != nil {
			t.Fatalf("LibraryToText failed: %v", err)
		}

		want := "My Movies: 2\n\n" +
			"1. Dune: Part Two (2024) [2h 46m] purchased Mar 9, 2024\n" +
			"2. Oppenheimer (2023) [3h 0m] purchased Mar 9, 2024\n"
		if string(data) != want {
			t.Errorf("LibraryToText() =\n%s\nwant\n%s", data, want)
		}
	})
}

func TestReceipts(t *testing.T) {
	lines := []models.LineItem{
		{Movie: th.Movie(1, "Dune: Part Two", "19.99"), Quantity: 1},
		{Movie: th.Movie(2, "The Batman", "14.99"), Quantity: 2},
	}
	summary := checkout.Summarize(lines, decimal.RequireFromString("0.10"))

	t.Run("CartToText", func(t *testing.T) {
		output := string(CartToText(lines, summary))
		for _, want := range []string{"Dune: Part Two", "$29.98", "$49.97", "$5.00", "$54.97"} {
			if !strings.Contains(output, want) {
				t.Errorf("cart text missing %q:\n%s", want, output)
			}
		}

		if got := string(CartToText(nil, checkout.Summary{})); got != "Your cart is empty\n" {
			t.Errorf("empty cart text = %q", got)
		}
	})

	t.Run("OrderReceipt", func(t *testing.T) {
		order := &checkout.Order{
			Number:    "ORD-000042",
			PlacedAt:  purchased,
			Customer:  checkout.Contact{FullName: "Jane Doe", Email: "jane@mail.test"},
			CardLast4: "4242",
			Lines:     lines,
			Summary:   summary,
		}

		output := string(OrderReceipt(order))
		for _, want := range []string{"ORD-000042", "March 9, 2024", "Jane Doe <jane@mail.test>", "**** 4242", "$54.97"} {
			if !strings.Contains(output, want) {
				t.Errorf("receipt missing %q:\n%s", want, output)
			}
		}
	})
}

func TestDownloadImage(t *testing.T) {
	t.Run("CancelledContext", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("late"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := DownloadImage(ctx, server.URL); err == nil {
			t.Error("expected error for cancelled context")
		}
	})

	t.Run("EmptyURL", func(t *testing.T) {
		_, err := DownloadImage(context.Background(), "")
		if err == nil {
			t.Error("DownloadImage with empty URL should return error")
		}
	})

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("jpeg-bytes"))
		}))
		defer server.Close()

		data, err := DownloadImage(context.Background(), server.URL+"/poster.jpg")
		if err != nil || string(data) != "jpeg-bytes" {
			t.Errorf("DownloadImage() = (%q, %v)", data, err)
		}
	})

	t.Run("BadStatus", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		if _, err := DownloadImage(context.Background(), server.URL); err == nil {
			t.Error("expected error for 404 response")
		}
	})
}

func TestFileExports(t *testing.T) {
	lib := testLibrary()

	t.Run("WriteCSVExport", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "mine")

		result, err := WriteCSVExport("Demo User", lib, base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		th.AssertFileExists(t, result.LibraryFile)
		th.AssertFileExists(t, result.MetadataFile)

		if !strings.HasSuffix(result.LibraryFile, "mine_library.csv") {
			t.Errorf("unexpected library file %s", result.LibraryFile)
		}

		metadata := th.MustReadFile(t, result.MetadataFile)
		for _, want := range []string{`"owner": "Demo User"`, `"titles": 2`, `"Science Fiction"`} {
			if !strings.Contains(metadata, want) {
				t.Errorf("metadata missing %s:\n%s", want, metadata)
			}
		}
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		t.Run("without posters", func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "export")

			result, err := WriteMarkdownExport("Demo User", lib, dir, nil)
			if err != nil {
				t.Fatalf("WriteMarkdownExport failed: %v", err)
			}

			if len(result.Files) != 1 || len(result.Posters) != 0 {
				t.Errorf("expected only README.md, got %v", result.Files)
			}
			th.AssertFileExists(t, filepath.Join(dir, "README.md"))
		})

		t.Run("with posters", func(t *testing.T) {
			dir := t.TempDir()

			result, err := WriteMarkdownExport("", lib, dir, map[int]string{3: "posters/3.jpg", 99: "posters/99.jpg"})
			if err != nil {
				t.Fatalf("WriteMarkdownExport failed: %v", err)
			}

			if len(result.Posters) != 1 || result.Posters[0] != filepath.Join(dir, "posters", "3.jpg") {
				t.Errorf("expected only owned posters, got %v", result.Posters)
			}
			if readme := th.MustReadFile(t, filepath.Join(dir, "README.md")); !strings.Contains(readme, "![Oppenheimer](posters/3.jpg)") {
				t.Errorf("README missing poster link:\n%s", readme)
			}
		})
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mine.txt")

		got, err := WriteTextExport(lib, path)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if got != path {
			t.Errorf("WriteTextExport() = %s, want %s", got, path)
		}
		if !strings.HasPrefix(th.MustReadFile(t, path), "My Movies: 2") {
			t.Error("text export has unexpected content")
		}
	})
}
