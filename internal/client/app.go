package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-cash-card/internal/adapter"
	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/models"
	"github.com/shopspring/decimal"
)

// Usage describes the commands understood by [App.Run].
const Usage = `usage: cashcard-client [flags] <command>

commands:
  get <id>                               print one cash card
  list [-page N] [-size N] [-sort p,dir]  print a page of cash cards
  create <amount>                        create a cash card and print its id
  version                                print the server version
`

type App struct {
	adapter adapter.CashCardAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(cashCardAdapter adapter.CashCardAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: cashCardAdapter,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("func", "*App.Run").Str("command", command).Strs("args", rest).Send()

	switch command {
	case "get":
		return a.get(ctx, rest)
	case "list":
		return a.list(ctx, rest)
	case "create":
		return a.create(ctx, rest)
	case "version":
		return a.version(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) get(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: id", ErrMissingArgument)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: id %q", ErrInvalidArgument, args[0])
	}

	card, err := a.adapter.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get cash card %d: %w", id, err)
	}

	return a.printJSON(card)
}

func (a *App) list(ctx context.Context, args []string) error {
	var (
		page  models.PageRequest
		sorts sortFlag
	)

	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&page.Page, "page", 0, "0-based page number")
	fs.IntVar(&page.Size, "size", 0, "page size, server default when 0")
	fs.Var(&sorts, "sort", "sort order as property[,asc|desc], repeatable")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	page.Sort = sorts

	cards, err := a.adapter.List(ctx, page)
	if err != nil {
		return fmt.Errorf("list cash cards: %w", err)
	}

	return a.printJSON(cards)
}

func (a *App) create(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: amount", ErrMissingArgument)
	}

	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("%w: amount %q", ErrInvalidArgument, args[0])
	}

	id, err := a.adapter.Create(ctx, amount)
	if err != nil {
		return fmt.Errorf("create cash card: %w", err)
	}

	_, err = fmt.Fprintln(a.out, id)
	return err
}

func (a *App) version(ctx context.Context) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}

	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) printJSON(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// sortFlag collects repeated -sort values.
type sortFlag []models.Order

func (s *sortFlag) String() string {
	if s == nil {
		return ""
	}
	out := ""
	for i, order := range *s {
		if i > 0 {
			out += " "
		}
		out += order.String()
	}
	return out
}

func (s *sortFlag) Set(value string) error {
	orders := models.ParseSort(value)
	if len(orders) == 0 {
		return fmt.Errorf("no property in sort %q", value)
	}
	*s = append(*s, orders...)
	return nil
}
