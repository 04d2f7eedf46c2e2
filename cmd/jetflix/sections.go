package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/ctxlog"
	"github.com/fabler/jetflix/internal/model"
	"github.com/fabler/jetflix/internal/tmdb"
)

// errAllSectionsFailed is returned when no requested listing could be loaded
var errAllSectionsFailed = errors.New("no section could be loaded")

func sectionsCmd(flags *globalFlags) *cobra.Command {
	var (
		kinds   []string
		page    int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Print movie listings without opening the UI",
		Long: `Fetch one or more TMDB listings concurrently and print one movie per line:
id, release year, rating and title, separated by tabs.`,
		Example: `  jetflix sections
  jetflix sections --kind top_rated --kind upcoming --page 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := parseKinds(kinds)
			if err != nil {
				return err
			}
			if page < catalog.MinPage {
				return fmt.Errorf("%w: %d", tmdb.ErrInvalidPage, page)
			}

			logger := flags.logger(cmd.ErrOrStderr())
			settings, err := flags.loadSettings(newApp())
			if err != nil {
				return err
			}
			if settings.GetAPIKey() == "" {
				return tmdb.ErrMissingAPIKey
			}

			client := tmdb.New(settings.ClientOptions(userAgent()))
			defer client.Close()

			ctx, cancel := context.WithTimeout(ctxlog.WithLogger(cmd.Context(), logger), timeout)
			defer cancel()

			sections := make([]*catalog.Section, len(selected))
			for i, kind := range selected {
				sections[i] = catalog.NewSection(ctx, client, kind, settings.GetContentLanguage(), catalog.FixedPage(page),
					catalog.WithLogger(logger))
			}
			defer func() {
				for _, s := range sections {
					s.Close()
				}
			}()

			g, gctx := errgroup.WithContext(ctx)
			for _, s := range sections {
				s := s
				g.Go(func() error {
					_, err := s.Await(gctx)
					return err
				})
			}
			if err := g.Wait(); err != nil {
				logger.Warn("deadline reached before every section settled", "error", err)
			}

			return printSections(cmd.OutOrStdout(), cmd.ErrOrStderr(), sections)
		},
	}

	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", nil, "listing to fetch (repeatable); default all")
	cmd.Flags().IntVarP(&page, "page", "p", catalog.MinPage, "page number")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline")
	return cmd
}

func parseKinds(names []string) ([]catalog.SectionKind, error) {
	if len(names) == 0 {
		return catalog.AllSectionKinds(), nil
	}
	kinds := make([]catalog.SectionKind, 0, len(names))
	for _, name := range names {
		kind, err := catalog.ParseSectionKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// printSections writes every settled section. Failed sections are reported
// on errOut; it fails only when every section failed.
func printSections(out, errOut io.Writer, sections []*catalog.Section) error {
	failed := 0
	for _, s := range sections {
		s.State().Match(
			func() {
				failed++
				fmt.Fprintf(errOut, "%s: still loading\n", s.Kind())
			},
			func(movies []model.Movie) {
				fmt.Fprintf(out, "# %s\n", s.Kind())
				for _, m := range movies {
					fmt.Fprintln(out, movieLine(m))
				}
			},
			func(err error) {
				failed++
				fmt.Fprintf(errOut, "%s: %v\n", s.Kind(), err)
			},
		)
	}
	if failed == len(sections) {
		return errAllSectionsFailed
	}
	return nil
}

func movieLine(m model.Movie) string {
	year := "-"
	if y := m.Year(); y > 0 {
		year = fmt.Sprint(y)
	}
	return fmt.Sprintf("%d\t%s\t%s\t%s", m.ID, year, m.RatingLabel(), m.DisplayTitle())
}
