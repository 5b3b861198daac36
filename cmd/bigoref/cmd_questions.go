package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/HerbHall/bigoref/internal/catalog"
	"github.com/HerbHall/bigoref/pkg/models"
)

func runQuestions(args []string, w io.Writer) error {
	fs := newFlagSet("questions", w)
	topic := fs.String("topic", models.All, "topic filter")
	difficulty := fs.String("difficulty", models.All, "difficulty filter (Easy, Medium, Hard)")
	search := fs.String("search", "", "case-insensitive title substring")
	asJSON := fs.Bool("json", false, "print rated questions as JSON")
	configPath := fs.String("config", "", "path to configuration file (catalog.languages)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state := models.FilterState{Topic: *topic, Difficulty: *difficulty, Search: *search}.Normalize()
	if err := catalog.ValidateState(state); err != nil {
		return fmt.Errorf("questions: %w", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	engine := catalog.NewEngine(cat, nil)
	res := engine.Questions(state)
	rated := engine.RateQuestions(res.Entries)

	if *asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rated)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTOPIC\tDIFFICULTY\tTIME\tSPACE")
	for _, q := range rated {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s (%s)\t%s (%s)\n",
			q.ID, q.Title, q.Topic, q.Difficulty, q.Time, q.TimeRating, q.Space, q.SpaceRating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d questions\n", res.Count)
	return nil
}
