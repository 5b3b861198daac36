package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/HerbHall/bigoref/internal/catalog"
	"github.com/HerbHall/bigoref/pkg/models"
)

func runAlgorithms(args []string, w io.Writer) error {
	fs := newFlagSet("algorithms", w)
	kind := fs.String("kind", catalog.CatalogSorting, "sorting, searching or structures")
	search := fs.String("search", "", "case-insensitive name substring")
	configPath := fs.String("config", "", "path to configuration file (catalog.languages)")
	if err := fs.Parse(args); err != nil {
		return err
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

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	var count int
	switch *kind {
	case catalog.CatalogSorting, catalog.CatalogSearching:
		var res catalog.Result[models.AlgorithmEntry]
		if *kind == catalog.CatalogSorting {
			res = engine.Sorting(*search)
		} else {
			res = engine.Searching(*search)
		}
		count = res.Count
		fmt.Fprintln(tw, "NAME\tBEST\tAVERAGE\tWORST\tSPACE")
		for _, a := range engine.RateAlgorithms(res.Entries) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.Name,
				rated(a.Best, a.Ratings.Best), rated(a.Average, a.Ratings.Average),
				rated(a.Worst, a.Ratings.Worst), rated(a.Space, a.Ratings.Space))
		}
	case catalog.CatalogStructures:
		res := engine.Structures(*search)
		count = res.Count
		// Average-case costs; the API also carries worst case.
		fmt.Fprintln(tw, "NAME\tACCESS\tSEARCH\tINSERT\tDELETE\tSPACE")
		for _, d := range engine.RateStructures(res.Entries) {
			avg, r := d.Average, d.Ratings.Average
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", d.Name,
				rated(avg.Access, r.Access), rated(avg.Search, r.Search),
				rated(avg.Insert, r.Insert), rated(avg.Delete, r.Delete),
				rated(d.Space, d.Ratings.Space))
		}
	default:
		return fmt.Errorf("algorithms: unknown kind %q", *kind)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d entries\n", count)
	return nil
}

func rated(notation string, r fmt.Stringer) string {
	return notation + " (" + r.String() + ")"
}
