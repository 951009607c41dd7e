package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitae-dev/vitae/core"
)

func init() {
	rootCmd.AddCommand(checkContentCmd)
}

var checkContentCmd = &cobra.Command{
	Use:   "check-content",
	Short: "Resolve every record in every locale and report problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, co, _, err := setup()
		if err != nil {
			return err
		}

		collections, err := co.Collections()
		if err != nil {
			return err
		}

		problems := 0

		for _, locale := range c.Site.Locales {
			ctx := core.WithRenderContext(context.Background(), co.NewRenderContext(locale))

			for _, collection := range core.CollectionNames {
				for _, id := range collections.BaseIDs(collection) {
					_, err := co.ResolveRecord(ctx, collection, id)
					if err != nil {
						fmt.Printf("missing: %s/%s (%s): %s\n", collection, id, locale.Code, err)
						problems++
					}
				}
			}
		}

		for _, collection := range core.CollectionNames {
			for _, key := range collections.Orphans(collection) {
				fmt.Printf("orphan override: %s/%s.%s.md has no base record\n", collection, key.ID, key.Locale)
				problems++
			}
		}

		if problems == 0 {
			fmt.Println("All records resolve in every locale.")
			return nil
		}

		return fmt.Errorf("found %d content problems", problems)
	},
}
