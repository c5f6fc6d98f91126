package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/japaniel/glazekb/pkg/catalog"
	"github.com/japaniel/glazekb/pkg/dataset"
	"github.com/japaniel/glazekb/pkg/db"
	"github.com/japaniel/glazekb/pkg/glaze"
	"github.com/prometheus/common/expfmt"
)

type row struct {
	ID    string
	Title string
}

type record interface {
	Key() string
	Label() string
}

func rows[T record](items []T) []row {
	out := make([]row, 0, len(items))
	for _, it := range items {
		out = append(out, row{ID: it.Key(), Title: it.Label()})
	}
	return out
}

func recipeRows(items []glaze.Recipe) []row {
	out := make([]row, 0, len(items))
	for _, r := range items {
		out = append(out, row{ID: strconv.Itoa(r.ID), Title: r.Name})
	}
	return out
}

// query lists kind, filtered by q when filter is set.
func query(cat *catalog.Catalog, kind dataset.Kind, q string, filter bool) []row {
	switch kind {
	case dataset.Materials:
		if filter {
			return rows(cat.SearchMaterials(q))
		}
		return rows(cat.Materials())
	case dataset.Colorants:
		if filter {
			return rows(cat.SearchColorants(q))
		}
		return rows(cat.Colorants())
	case dataset.GlazeTypes:
		if filter {
			return rows(cat.SearchGlazeTypes(q))
		}
		return rows(cat.GlazeTypes())
	case dataset.FiringTypes:
		if filter {
			return rows(cat.SearchFiringTypes(q))
		}
		return rows(cat.FiringTypes())
	case dataset.SurfaceEffects:
		if filter {
			return rows(cat.SearchSurfaceEffects(q))
		}
		return rows(cat.SurfaceEffects())
	case dataset.SafetyInfo:
		if filter {
			return rows(cat.SearchSafetyInfo(q))
		}
		return rows(cat.SafetyInfo())
	case dataset.GlossaryTerms:
		if filter {
			return rows(cat.SearchGlossaryTerms(q))
		}
		return rows(cat.GlossaryTerms())
	case dataset.Recipes:
		if filter {
			return recipeRows(cat.SearchRecipes(q))
		}
		return recipeRows(cat.Recipes())
	}
	return nil
}

func (a *app) list(ctx context.Context, kindArg, q string, filter bool) error {
	kind, err := dataset.ParseKind(kindArg)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if _, err := a.load(ctx); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, r := range query(a.cat, kind, q, filter) {
		fmt.Fprintf(tw, "%s\t%s\n", r.ID, r.Title)
	}
	return tw.Flush()
}

// relatedGroup is one resolved cross-reference list. Dangling ids are
// already dropped.
type relatedGroup struct {
	Kind  dataset.Kind
	Items []row
}

func group[T record](kind dataset.Kind, items []T) relatedGroup {
	return relatedGroup{Kind: kind, Items: rows(items)}
}

// lookup finds one record and resolves its cross-references.
func lookup(cat *catalog.Catalog, kind dataset.Kind, id string) (any, []relatedGroup, bool) {
	switch kind {
	case dataset.Materials:
		m, ok := cat.Material(id)
		return m, []relatedGroup{
			group(dataset.Materials, cat.MaterialsByIDs(m.RelatedMaterialIDs)),
			group(dataset.Colorants, cat.ColorantsByIDs(m.RelatedColorantIDs)),
			group(dataset.GlazeTypes, cat.GlazeTypesByIDs(m.RelatedGlazeTypeIDs)),
		}, ok
	case dataset.Colorants:
		c, ok := cat.Colorant(id)
		return c, []relatedGroup{
			group(dataset.Colorants, cat.ColorantsByIDs(c.RelatedColorantIDs)),
			group(dataset.Materials, cat.MaterialsByIDs(c.RelatedMaterialIDs)),
			group(dataset.SurfaceEffects, cat.SurfaceEffectsByIDs(c.RelatedSurfaceEffectIDs)),
		}, ok
	case dataset.GlazeTypes:
		g, ok := cat.GlazeType(id)
		return g, []relatedGroup{
			group(dataset.GlazeTypes, cat.GlazeTypesByIDs(g.RelatedGlazeTypeIDs)),
			group(dataset.SurfaceEffects, cat.SurfaceEffectsByIDs(g.RelatedSurfaceEffectIDs)),
			group(dataset.FiringTypes, cat.FiringTypesByIDs(g.RelatedFiringTypeIDs)),
		}, ok
	case dataset.FiringTypes:
		f, ok := cat.FiringType(id)
		return f, []relatedGroup{
			group(dataset.GlazeTypes, cat.GlazeTypesByIDs(f.RelatedGlazeTypeIDs)),
			group(dataset.FiringTypes, cat.FiringTypesByIDs(f.RelatedFiringTypeIDs)),
		}, ok
	case dataset.SurfaceEffects:
		s, ok := cat.SurfaceEffect(id)
		return s, []relatedGroup{
			group(dataset.SurfaceEffects, cat.SurfaceEffectsByIDs(s.RelatedEffectIDs)),
			group(dataset.GlazeTypes, cat.GlazeTypesByIDs(s.RelatedGlazeTypeIDs)),
			group(dataset.Colorants, cat.ColorantsByIDs(s.RelatedColorantIDs)),
		}, ok
	case dataset.SafetyInfo:
		s, ok := cat.SafetyArticle(id)
		return s, []relatedGroup{
			group(dataset.Materials, cat.MaterialsByIDs(s.RelatedMaterialIDs)),
			group(dataset.Colorants, cat.ColorantsByIDs(s.RelatedColorantIDs)),
		}, ok
	case dataset.GlossaryTerms:
		g, ok := cat.GlossaryTerm(id)
		return g, []relatedGroup{
			group(dataset.GlossaryTerms, cat.GlossaryTermsByIDs(g.RelatedTermIDs)),
			group(dataset.Materials, cat.MaterialsByIDs(g.RelatedMaterialIDs)),
			group(dataset.Colorants, cat.ColorantsByIDs(g.RelatedColorantIDs)),
			group(dataset.GlazeTypes, cat.GlazeTypesByIDs(g.RelatedGlazeTypeIDs)),
		}, ok
	case dataset.Recipes:
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, nil, false
		}
		r, ok := cat.Recipe(n)
		return r, nil, ok
	}
	return nil, nil, false
}

func (a *app) show(ctx context.Context, kindArg, id string) error {
	kind, err := dataset.ParseKind(kindArg)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if _, err := a.load(ctx); err != nil {
		return err
	}
	rec, related, ok := lookup(a.cat, kind, id)
	if !ok {
		return fmt.Errorf("%s %q not found", kind.Dashed(), id)
	}
	body, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n", body)
	for _, g := range related {
		if len(g.Items) == 0 {
			continue
		}
		fmt.Fprintf(a.out, "\nrelated %s:\n", g.Kind.Dashed())
		for _, it := range g.Items {
			fmt.Fprintf(a.out, "  %s\t%s\n", it.ID, it.Title)
		}
	}
	return nil
}

func (a *app) theme(args []string) error {
	conn, err := db.Open(a.cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if len(args) == 1 {
		mode, err := glaze.ParseThemeMode(args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if err := db.SetTheme(conn, mode); err != nil {
			return err
		}
		a.log.Debug("theme saved", "theme", string(mode))
	}
	mode, err := db.GetTheme(conn)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", mode, mode.DisplayName())
	return nil
}

func (a *app) export(ctx context.Context) error {
	report, err := a.load(ctx)
	if err != nil {
		return err
	}
	conn, err := db.Open(a.cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	n, err := db.Export(ctx, conn, a.cat, report, db.DefaultBatchSize)
	if err != nil {
		return err
	}
	a.log.Info("snapshot exported", "database", a.cfg.Database, "entries", n, "run", report.RunID.String())
	fmt.Fprintf(a.out, "exported %d entries to %s (run %s)\n", n, a.cfg.Database, report.RunID)
	for _, kind := range report.Failed() {
		fmt.Fprintf(a.out, "warning: %s failed to load: %v\n", kind.Dashed(), report.Results[kind].Err)
	}
	return nil
}

func (a *app) stats(ctx context.Context) error {
	report, err := a.load(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "KIND\tRECORDS\tRESULT\n")
	for _, kind := range dataset.Kinds() {
		res := report.Results[kind]
		result := "ok"
		if res.Err != nil {
			result = res.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", kind.Dashed(), res.Count, result)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nrun %s, %d records in %s\n\n", report.RunID, report.Total(), report.Finished.Sub(report.Started))

	mfs, err := a.recorder.Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
			return err
		}
	}
	return nil
}

