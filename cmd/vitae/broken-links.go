package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(brokenLinksCmd)
}

var brokenLinksCmd = &cobra.Command{
	Use:   "broken-links",
	Short: "Build the website and report internal links that resolve to nothing",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, co, r, err := setup()
		if err != nil {
			return err
		}

		err = r.BuildSite(true)
		if err != nil {
			return err
		}

		pages := []string{}
		for _, locale := range c.Site.Locales {
			prefix := ""
			if !locale.Primary() {
				prefix = "/" + locale.Code
			}

			pages = append(pages, prefix+"/", prefix+"/print/")
		}

		broken := 0

		for _, page := range pages {
			links, err := co.GetPageLinks(page)
			if err != nil {
				return err
			}

			for _, link := range links {
				valid, err := co.IsLinkValid(link)
				if err != nil {
					return err
				}
				if !valid {
					fmt.Println(page, "->", link)
					broken++
				}
			}
		}

		if broken == 0 {
			fmt.Println("No broken internal links.")
			return nil
		}

		return fmt.Errorf("found %d broken links", broken)
	},
}
