package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/snnyvrz/readinglist/internal/model"
	"github.com/snnyvrz/readinglist/internal/shelf"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultDataDir() string {
	if dir := os.Getenv("SHELF_DATA_DIR"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "shelf")
	}
	return ".shelf"
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:          "shelf",
		Short:        "Keep track of the books you want to read, are reading and have read",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "directory holding the book list")

	open := func() *shelf.Shelf {
		return shelf.New(
			shelf.NewFileStorage(dataDir),
			shelf.WithLogger(log.New(errOut, "shelf: ", 0)),
		)
	}

	root.AddCommand(
		newAddCmd(open),
		newListCmd(open),
		newToggleCmd(open),
		newRemoveCmd(open),
	)

	return root
}

func newAddCmd(open func() *shelf.Shelf) *cobra.Command {
	form := shelf.NewForm()
	var status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !model.KnownGenre(form.Genre) {
				return fmt.Errorf("unknown genre %q (choose from: %s)", form.Genre, strings.Join(model.Genres(), ", "))
			}
			if !model.ValidRating(form.Rating) {
				return fmt.Errorf("rating must be between %d and %d", model.MinRating, model.MaxRating)
			}
			form.Status = model.Status(status)
			if !form.Status.Valid() {
				return fmt.Errorf("unknown status %q", status)
			}

			s := open()
			book, ok := s.Add(form)
			if !ok {
				return fmt.Errorf("title and author are required")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q by %s (id %d)\n", book.Title, book.Author, book.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Title, "title", "", "book title")
	f.StringVar(&form.Author, "author", "", "author name")
	f.StringVar(&form.Genre, "genre", form.Genre, "genre")
	f.IntVar(&form.Rating, "rating", form.Rating, "rating from 1 to 5")
	f.StringVar(&status, "status", form.Status.String(), `reading status: "Want to Read", "Currently Reading" or "Read"`)
	f.StringVar(&form.Notes, "notes", "", "your thoughts about the book")

	return cmd
}

func newListCmd(open func() *shelf.Shelf) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the collection, optionally filtered by title, author or genre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := open()
			books := s.Filter(search)
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "Your Book Collection (%d)\n", len(books))
			if msg := shelf.EmptyMessage(s.Len(), len(books)); msg != "" {
				fmt.Fprintln(w, msg)
				return nil
			}

			for _, b := range books {
				printBook(w, b)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "search books by title, author or genre")
	return cmd
}

func printBook(w io.Writer, b shelf.Book) {
	fmt.Fprintf(w, "\n[%d] %s\n", b.ID, b.Title)
	fmt.Fprintf(w, "    by %s\n", b.Author)
	fmt.Fprintf(w, "    %s  %s  %s\n", b.Genre, model.Stars(b.Rating), b.Status)
	if b.Notes != "" {
		fmt.Fprintf(w, "    %q\n", b.Notes)
	}
}

func newToggleCmd(open func() *shelf.Shelf) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Mark a book read, or back to want to read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s := open()
			s.Toggle(id)

			if b, ok := s.Find(id); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is now %s\n", b.Title, b.Status)
			}
			return nil
		},
	}
}

func newRemoveCmd(open func() *shelf.Shelf) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"delete", "rm"},
		Short:   "Delete a book from the collection",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			open().Remove(id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid book id %q", s)
	}
	return id, nil
}
