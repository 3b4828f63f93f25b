package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"research-agent-be/internal/config"
	"research-agent-be/pkg/events"
	pktNats "research-agent-be/pkg/nats"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	url := flag.String("nats", cfg.Nats.URL, "NATS server URL")
	durable := flag.String("durable", "", "durable consumer name; empty tails new events only")
	flag.Parse()

	sub, err := pktNats.NewSubscriber(*url)
	if err != nil {
		color.Red("Failed to connect to NATS: %v", err)
		os.Exit(1)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	subject := pktNats.Subject(events.TypeTurnCompleted)
	if err := sub.Subscribe(ctx, subject, *durable, printTurn); err != nil {
		color.Red("Failed to subscribe to %s: %v", subject, err)
		os.Exit(1)
	}

	color.Cyan("Watching %s on %s", subject, *url)
	<-ctx.Done()
}

var intentColors = map[string]*color.Color{
	"INITIAL":     color.New(color.FgCyan),
	"FULL_REPORT": color.New(color.FgGreen),
	"RISK_UPDATE": color.New(color.FgYellow),
	"RECALL":      color.New(color.FgBlue),
	"FALLBACK":    color.New(color.FgMagenta),
}

func printTurn(_ context.Context, event events.Event) error {
	p := event.Payload()
	intentName := fmt.Sprint(p["intent"])
	c, ok := intentColors[intentName]
	if !ok {
		c = color.New(color.Reset)
	}

	fallback := ""
	if found, _ := p["company_found"].(bool); !found {
		fallback = color.RedString(" (default report)")
	}

	fmt.Printf("%s %s turn=%v %s company=%q level=%v%s\n",
		event.Timestamp().Format(time.TimeOnly),
		p["session_id"],
		p["turn"],
		c.Sprint(intentName),
		p["company"],
		p["detail_level"],
		fallback,
	)
	return nil
}
