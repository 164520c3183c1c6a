package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/edsc-portals/internal/adapter"
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type App struct {
	adapter adapter.PortalAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(portalAdapter adapter.PortalAdapter, out io.Writer, logger *logger.Logger) (Client, error) {
	if portalAdapter == nil {
		return nil, ErrNoAdapter
	}

	return &App{
		adapter: portalAdapter,
		out:     out,
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		return a.listPortals(ctx)
	case 1:
		return a.showPortal(ctx, args[0])
	default:
		return fmt.Errorf("%w, got %d arguments", ErrTooManyArguments, len(args))
	}
}

func (a *App) listPortals(ctx context.Context) error {
	summaries, err := a.adapter.ListPortals(ctx)
	if err != nil {
		return fmt.Errorf("list portals: %w", err)
	}

	_, err = fmt.Fprintln(a.out, renderPortalTable(summaries))
	return err
}

func (a *App) showPortal(ctx context.Context, portalID string) error {
	portal, err := a.adapter.GetPortal(ctx, portalID)
	if err != nil {
		return fmt.Errorf("get portal %q: %w", portalID, err)
	}

	isDefault, err := a.adapter.IsDefaultPortal(ctx, portalID)
	if err != nil {
		return fmt.Errorf("check default portal %q: %w", portalID, err)
	}
	a.logger.Info().Str("portal_id", portalID).Bool("is_default", isDefault).Msg("portal resolved")

	data, err := json.MarshalIndent(portal, "", "  ")
	if err != nil {
		return fmt.Errorf("encode portal %q: %w", portalID, err)
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func renderPortalTable(summaries []models.PortalSummary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.PortalID, s.Title, strconv.FormatBool(s.IsDefault)})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("PORTAL", "TITLE", "DEFAULT").
		Rows(rows...).
		String()
}
