package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/viant/cmask/masker"
	"github.com/viant/cmask/masker/table"
	"github.com/viant/cmask/repository"
)

var (
	mode      = flag.String("mode", "mask", "mask or unmask")
	src       = flag.String("src", "", "source file: a C file to mask, or a masked file to restore")
	tablePath = flag.String("table", "", "conversion table location (unmask mode, inferred when empty)")
	unused    = flag.Bool("unused", false, "assign mx aliases to identifiers no rule classifies")
)

func main() {
	flag.Parse()
	if *src == "" {
		flag.Usage()
		log.Fatal("missing -src")
	}

	ctx := context.Background()
	workspace := repository.New()

	switch *mode {
	case "mask":
		if err := mask(ctx, workspace); err != nil {
			log.Fatal(err)
		}
	case "unmask":
		if err := unmask(ctx, workspace); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func mask(ctx context.Context, workspace *repository.Workspace) error {
	source, err := workspace.ReadSource(ctx, *src)
	if err != nil {
		return err
	}
	var options []masker.Option
	if *unused {
		options = append(options, masker.WithUnused())
	}
	result, err := masker.New(options...).Mask(source)
	if err != nil {
		return err
	}
	maskedURL, tableURL, err := workspace.WriteMasked(ctx, *src, result)
	if err != nil {
		return err
	}
	fmt.Printf("masked %d identifiers\n", result.Table.Len())
	fmt.Printf("masked source: %s\n", maskedURL)
	fmt.Printf("conversion table: %s\n", tableURL)
	return nil
}

func unmask(ctx context.Context, workspace *repository.Workspace) error {
	tableURL := *tablePath
	if tableURL == "" {
		tableURL = repository.InferTablePath(*src)
		fmt.Printf("inferred conversion table: %s\n", tableURL)
	}
	conversions, err := workspace.ReadTable(ctx, tableURL)
	if err != nil {
		return err
	}
	masked, err := workspace.ReadSource(ctx, *src)
	if err != nil {
		return err
	}
	result, err := masker.New().Unmask(masked, conversions)
	if err != nil {
		return err
	}
	restoredURL, err := workspace.WriteRestored(ctx, *src, result)
	if err != nil {
		return err
	}
	for _, category := range table.Categories {
		if count := result.Restored[category]; count > 0 {
			fmt.Printf("restored %-9s %d\n", category, count)
		}
	}
	for _, alias := range result.Unresolved {
		fmt.Printf("unresolved alias left in place: %s\n", alias)
	}
	if result.FingerprintMatch != nil {
		if *result.FingerprintMatch {
			fmt.Println("fingerprint verified: restored source matches the original")
		} else {
			fmt.Println("warning: restored source does not match the recorded fingerprint")
		}
	}
	fmt.Printf("restored source: %s\n", restoredURL)
	return nil
}
