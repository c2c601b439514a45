package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sapar/internal/config"
	"sapar/internal/logger"
	"sapar/internal/models"
	"sapar/internal/payments"
	"sapar/internal/session"
	"sapar/internal/storage"
	"sapar/internal/store"
	"sapar/internal/suggest"

	"github.com/joho/godotenv"
)

var (
	destination = flag.String("destination", "Goa", "Destination to plan a trip for")
	days        = flag.Int("days", 3, "Trip length in days")
	budget      = flag.Int("budget", 5000, "Trip budget")
	mood        = flag.String("mood", "relax", "Trip mood")
	travelers   = flag.Int("travelers", 2, "Number of travelers")
	book        = flag.Bool("book", false, "Book the generated trip")
	export      = flag.Bool("export", false, "Dump the stored data after the run")
)

func main() {
	flag.Parse()

	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	backend, err := newBackend(cfg)
	if err != nil {
		logger.Fatal("Failed to open storage backend", "error", err, "backend", cfg.StorageBackend)
	}
	defer backend.Close()

	st := store.New(backend,
		suggest.NewMockAdvisor(cfg.SuggestDelay),
		suggest.NewMockGenerator(cfg.ItineraryDelay),
	)
	gateway := payments.NewSimulatedGateway(payments.Config{Delay: cfg.PaymentDelay})
	sess := session.New(st, gateway)

	// Прерывание отменяет текущую операцию
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, sess, st); err != nil {
		logger.Get().Error("Planner run failed", "error", err)
		os.Exit(1)
	}
}

// newBackend выбирает бэкенд хранилища по конфигурации
func newBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryBackend(), nil
	case "redis":
		return storage.NewRedisBackend(cfg.Redis)
	default:
		return storage.NewFileBackend(cfg.StoragePath)
	}
}

func run(ctx context.Context, sess *session.Session, st *store.Store) error {
	if err := sess.Init(ctx); err != nil {
		return err
	}

	results, err := sess.SearchDestinations(ctx, *destination)
	if err != nil {
		return err
	}
	fmt.Printf("Destinations matching %q:\n", *destination)
	for _, dest := range results {
		fmt.Printf("  %s, %s — avg ₹%d/day (%s)\n",
			dest.Name, dest.Country, dest.AverageCost, dest.Description)
	}

	insights, err := sess.SuggestedDates(ctx, *destination)
	if err != nil {
		return err
	}
	fmt.Println("\nSuggested travel dates:")
	for i, insight := range insights {
		marker := "  "
		if i == 0 {
			marker = "★ "
		}
		line := fmt.Sprintf("%s%s — %s, %s", marker, insight.Date, insight.Weather, insight.Reason)
		if insight.Weekend {
			line += " (weekend)"
		}
		fmt.Println(line)
	}

	trip, err := sess.GenerateItinerary(ctx, models.ItineraryParams{
		Destination: *destination,
		Days:        *days,
		Budget:      *budget,
		Mood:        *mood,
		Travelers:   *travelers,
	})
	if err != nil {
		return err
	}
	fmt.Printf("\nItinerary for %s (%d days, status %s):\n", trip.Destination, len(trip.Itinerary), trip.Status)
	for _, day := range trip.Itinerary {
		fmt.Printf("  Day %d — %s (₹%d, %s)\n", day.Day, day.Date, day.TotalCost, day.Transport)
		for _, activity := range day.Activities {
			fmt.Printf("    %s  %s %s [%s, %s, %.1f★]\n",
				activity.Time, activity.Image, activity.Title, activity.Duration, activity.Cost, activity.Rating)
		}
	}
	fmt.Printf("Total cost: ₹%d\n", trip.TotalCost)

	if *book {
		reference, err := sess.BookTrip(ctx, trip.ID, trip.TotalCost)
		if err != nil {
			return err
		}
		fmt.Printf("\nBooked! Reference: %s\n", reference)
	}

	if *export {
		dump, err := st.Export(ctx)
		if err != nil {
			return err
		}
		fmt.Println("\n" + dump)
	}

	return nil
}
