package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/cinevault/internal/formatter"
	"github.com/desertthunder/cinevault/internal/models"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = lineItem{}
)

// movieItem wraps [models.Movie] to implement [list.Item].
type movieItem struct {
	movie models.Movie
	owned bool
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string {
	if i.owned {
		return i.movie.Title + " ✓"
	}
	return i.movie.Title
}
func (i movieItem) Description() string {
	return fmt.Sprintf("%d • %s • %s • %s",
		i.movie.Year(), strings.Join(i.movie.Genres, ", "), formatter.FormatRuntime(i.movie.Runtime), formatter.FormatCurrency(i.movie.Price))
}

// lineItem wraps [models.LineItem] to implement [list.Item].
type lineItem struct {
	line models.LineItem
}

func (i lineItem) FilterValue() string { return i.line.Movie.Title }
func (i lineItem) Title() string       { return i.line.Movie.Title }
func (i lineItem) Description() string {
	return fmt.Sprintf("%d × %s = %s",
		i.line.Quantity, formatter.FormatCurrency(i.line.Movie.Price), formatter.FormatCurrency(i.line.Subtotal()))
}
