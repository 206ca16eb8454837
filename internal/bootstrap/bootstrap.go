package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	adviceinadapter "gakuplan/internal/modules/advice/adapter/in"
	adviceservice "gakuplan/internal/modules/advice/service"
	adviceusecase "gakuplan/internal/modules/advice/usecase"
	cataloginadapter "gakuplan/internal/modules/catalog/adapter/in"
	catalogoutadapter "gakuplan/internal/modules/catalog/adapter/out"
	catalogservice "gakuplan/internal/modules/catalog/service"
	catalogusecase "gakuplan/internal/modules/catalog/usecase"
	profileinadapter "gakuplan/internal/modules/profile/adapter/in"
	profileoutadapter "gakuplan/internal/modules/profile/adapter/out"
	profileservice "gakuplan/internal/modules/profile/service"
	profileusecase "gakuplan/internal/modules/profile/usecase"
	reviewinadapter "gakuplan/internal/modules/review/adapter/in"
	reviewoutadapter "gakuplan/internal/modules/review/adapter/out"
	reviewservice "gakuplan/internal/modules/review/service"
	reviewusecase "gakuplan/internal/modules/review/usecase"
	strategyinadapter "gakuplan/internal/modules/strategy/adapter/in"
	strategyservice "gakuplan/internal/modules/strategy/service"
	strategyusecase "gakuplan/internal/modules/strategy/usecase"
	weeklyinadapter "gakuplan/internal/modules/weekly/adapter/in"
	weeklyoutadapter "gakuplan/internal/modules/weekly/adapter/out"
	weeklyservice "gakuplan/internal/modules/weekly/service"
	weeklyusecase "gakuplan/internal/modules/weekly/usecase"
	"gakuplan/internal/platform/clock"
	"gakuplan/internal/platform/config"
	"gakuplan/internal/platform/id"
	uiapp "gakuplan/internal/ui/app"
)

type App struct {
	CatalogCLI  cataloginadapter.CLIHandler
	ProfileCLI  profileinadapter.CLIHandler
	AdviceCLI   adviceinadapter.CLIHandler
	StrategyCLI strategyinadapter.CLIHandler
	WeeklyCLI   weeklyinadapter.CLIHandler
	ReviewCLI   reviewinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	catalogSvc, err := catalogservice.NewCatalogService(
		context.Background(),
		catalogoutadapter.NewYAMLOverrideStore(cfg.CatalogPath),
	)
	if err != nil {
		return nil, fmt.Errorf("new catalog service: %w", err)
	}
	tables := catalogSvc.Tables()
	catalogUC := catalogusecase.NewInteractor(catalogSvc)

	sessionStore := profileoutadapter.NewFileSessionStore(cfg.SessionPath, clk)
	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(ids, sessionStore))

	adviceUC := adviceusecase.NewInteractor(adviceservice.NewAdviceService(tables, sessionStore))

	strategyUC := strategyusecase.NewInteractor(strategyservice.NewStrategyService(tables, clk, sessionStore))

	snapshotProjector, err := weeklyoutadapter.NewSQLiteSnapshotProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new snapshot projector: %w", err)
	}
	weeklyUC := weeklyusecase.NewInteractor(weeklyservice.NewWeeklyService(clk, sessionStore, snapshotProjector))

	cycleProjector, err := reviewoutadapter.NewSQLiteCycleProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new cycle projector: %w", err)
	}
	reviewUC := reviewusecase.NewInteractor(reviewservice.NewReviewService(tables, clk, sessionStore, cycleProjector))

	return &App{
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ProfileCLI:  profileinadapter.NewCLIHandler(profileUC),
		AdviceCLI:   adviceinadapter.NewCLIHandler(adviceUC),
		StrategyCLI: strategyinadapter.NewCLIHandler(strategyUC),
		WeeklyCLI:   weeklyinadapter.NewCLIHandler(weeklyUC),
		ReviewCLI:   reviewinadapter.NewCLIHandler(reviewUC),
	}, nil
}

func RunTUI(dataPath string, app *App) error {
	model := uiapp.NewModel(dataPath, app.CatalogCLI, app.ProfileCLI, app.AdviceCLI, app.StrategyCLI, app.WeeklyCLI, app.ReviewCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
