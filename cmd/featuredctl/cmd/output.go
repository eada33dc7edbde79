package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vyrodovalexey/featured-content/internal/model"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printItem(w io.Writer, item model.ContentItem) {
	fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ID, item.Title, item.LinkURL, item.ImageURL)
}

func printItemDetail(w io.Writer, item model.ContentItem) {
	fmt.Fprintf(w, "ID:          %d\n", item.ID)
	fmt.Fprintf(w, "Title:       %s\n", item.Title)
	fmt.Fprintf(w, "Description: %s\n", item.Description)
	fmt.Fprintf(w, "Image URL:   %s\n", item.ImageURL)
	fmt.Fprintf(w, "Link URL:    %s\n", item.LinkURL)
}
