package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wellnessio/wellness-backend/client"
	"github.com/wellnessio/wellness-backend/internal/api/validate"
	"github.com/wellnessio/wellness-backend/internal/blob"
	"github.com/wellnessio/wellness-backend/internal/model"
)

func requireUser() error {
	if userFlag == "" {
		return fmt.Errorf("--user required")
	}
	return nil
}

func printEntry(w io.Writer, e model.Entry) {
	line := fmt.Sprintf("%s  %-8s  %s", e.ID, e.Mood, e.CreatedAt.Local().Format(time.RFC822))
	if e.Note != nil {
		line += "  " + *e.Note
	}
	if e.Image != nil {
		line += "  [photo]"
	}
	fmt.Fprintln(w, line)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			entries, err := client.New(apiFlag).Entries(context.Background(), userFlag)
			if err != nil {
				return err
			}
			for _, e := range entries {
				printEntry(os.Stdout, e)
			}
			return nil
		},
	}
}

// uploadPhoto stages a local photo file through the blob store and
// returns its URL. Stands in for the app's cloud upload in local use.
func uploadPhoto(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	store := blob.NewDirStore(filepath.Join(home, ".wellnessctl", "media"))
	return store.Upload(context.Background(), filepath.Base(path), f)
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			mood, _ := cmd.Flags().GetString("mood")
			note, _ := cmd.Flags().GetString("note")
			photo, _ := cmd.Flags().GetString("photo")

			if err := validate.Mood(mood); err != nil {
				return err
			}
			req := model.CreateEntryRequest{UserID: userFlag, Mood: mood}
			if note != "" {
				req.Note = &note
			}
			if photo != "" {
				url, err := uploadPhoto(photo)
				if err != nil {
					return fmt.Errorf("photo upload: %w", err)
				}
				req.Image = &url
			}
			created, err := client.New(apiFlag).CreateEntry(context.Background(), req)
			if err != nil {
				return err
			}
			printEntry(os.Stdout, *created)
			return nil
		},
	}
	cmd.Flags().StringP("mood", "m", "", "Mood label (required)")
	cmd.Flags().StringP("note", "n", "", "Free-text note")
	cmd.Flags().StringP("photo", "p", "", "Path to a photo to attach")
	_ = cmd.MarkFlagRequired("mood")
	return cmd
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <entryId>",
		Short: "Update fields of an existing entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			req := model.UpdateEntryRequest{UserID: userFlag}
			if cmd.Flags().Changed("mood") {
				mood, _ := cmd.Flags().GetString("mood")
				if err := validate.Mood(mood); err != nil {
					return err
				}
				req.Mood = &mood
			}
			if cmd.Flags().Changed("note") {
				note, _ := cmd.Flags().GetString("note")
				req.Note = &note
			}
			if cmd.Flags().Changed("photo") {
				photo, _ := cmd.Flags().GetString("photo")
				url, err := uploadPhoto(photo)
				if err != nil {
					return fmt.Errorf("photo upload: %w", err)
				}
				req.Image = &url
			}
			updated, err := client.New(apiFlag).UpdateEntry(context.Background(), args[0], req)
			if err != nil {
				return err
			}
			printEntry(os.Stdout, *updated)
			return nil
		},
	}
	cmd.Flags().StringP("mood", "m", "", "New mood label")
	cmd.Flags().StringP("note", "n", "", "New note text")
	cmd.Flags().StringP("photo", "p", "", "Path to a replacement photo")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entryId>",
		Short: "Delete an entry you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(); err != nil {
				return err
			}
			return client.New(apiFlag).DeleteEntry(context.Background(), args[0], userFlag)
		},
	}
}

func newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print an inspirational quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := client.New(apiFlag).Quote(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s - %s\n", q.Quote, q.Author)
			return nil
		},
	}
}
