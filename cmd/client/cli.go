package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/adapter"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/caarlos0/env/v11"
)

const usage = `usage: user-registry-client [-a address] [-t token] [-timeout 10s] <command> [args]

commands:
  list                         list active users
  get <id>                     show one user
  email <email>                find a user by email
  department <name>            list users of a department
  create -first .. -hire-date  create a user
  update <id> [-first ..]      update the given fields of a user
  delete <id>                  soft delete a user
  health                       detailed server health
  version                      server and client version`

var errUsage = errors.New(usage)

// clientConfig is read from the environment and overridden by flags.
type clientConfig struct {
	Address string        `env:"REGISTRY_ADDRESS" envDefault:"localhost:8080"`
	Token   string        `env:"REGISTRY_TOKEN"`
	Timeout time.Duration `env:"REGISTRY_TIMEOUT" envDefault:"10s"`
	Debug   bool          `env:"REGISTRY_DEBUG"`
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := env.ParseAs[clientConfig]()
	if err != nil {
		return fmt.Errorf("error parsing env variables: %w", err)
	}

	fs := flag.NewFlagSet("user-registry-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "registry address")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "API token")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log requests to stderr")
	if err = fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n\n%w", err, errUsage)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	log := logger.Nop()
	if cfg.Debug {
		log = logger.NewLoggerWithLevel("user-registry-client", "debug")
	}

	client, err := adapter.NewHTTPRegistryAdapter(adapter.Config{
		Address: cfg.Address,
		Token:   cfg.Token,
		Timeout: cfg.Timeout,
	}, log)
	if err != nil {
		return err
	}

	result, err := dispatch(ctx, client, rest[0], rest[1:])
	if err != nil {
		// a DOWN health report is still worth showing
		if health, ok := result.(models.DetailedHealthResponse); ok && health.Status != "" {
			_ = printJSON(stdout, health)
		}
		return err
	}

	return printJSON(stdout, result)
}

func dispatch(ctx context.Context, client adapter.RegistryAdapter, command string, args []string) (any, error) {
	switch command {
	case "list":
		return client.List(ctx)

	case "get":
		id, err := idArg(args)
		if err != nil {
			return nil, err
		}
		return client.Get(ctx, id)

	case "email":
		if len(args) != 1 {
			return nil, fmt.Errorf("email: expected exactly one email")
		}
		return client.GetByEmail(ctx, args[0])

	case "department":
		if len(args) != 1 {
			return nil, fmt.Errorf("department: expected exactly one department name")
		}
		return client.ListByDepartment(ctx, args[0])

	case "create":
		req, err := parseCreate(args)
		if err != nil {
			return nil, err
		}
		return client.Create(ctx, req)

	case "update":
		id, err := idArg(args)
		if err != nil {
			return nil, err
		}
		req, err := parseUpdate(args[1:])
		if err != nil {
			return nil, err
		}
		return client.Update(ctx, id, req)

	case "delete":
		id, err := idArg(args)
		if err != nil {
			return nil, err
		}
		return client.Delete(ctx, id)

	case "health":
		health, err := client.Health(ctx)
		if err != nil && health.Status == "" {
			return nil, err
		}
		return health, err

	case "version":
		server, err := client.Version(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"server": server, "client": models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).BuildVersion()}, nil

	default:
		return nil, fmt.Errorf("unknown command %q\n\n%w", command, errUsage)
	}
}

func idArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing user id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("user id must be a positive integer, got %q", args[0])
	}
	return id, nil
}

// userFlags binds one flag per user field. Only the flags present on the
// command line are reported by set.
type userFlags struct {
	fs     *flag.FlagSet
	values map[string]*string
}

var userFields = []struct{ flag, usage string }{
	{"first", "first name"},
	{"last", "last name"},
	{"email", "email address"},
	{"phone", "phone number"},
	{"department", "department"},
	{"position", "position"},
	{"hire-date", "hire date, YYYY-MM-DD"},
}

func newUserFlags(name string) *userFlags {
	uf := &userFlags{
		fs:     flag.NewFlagSet(name, flag.ContinueOnError),
		values: make(map[string]*string, len(userFields)),
	}
	uf.fs.SetOutput(io.Discard)
	for _, f := range userFields {
		uf.values[f.flag] = uf.fs.String(f.flag, "", f.usage)
	}
	return uf
}

func (uf *userFlags) parse(args []string) (map[string]string, error) {
	if err := uf.fs.Parse(args); err != nil {
		return nil, err
	}
	if uf.fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", uf.fs.Args())
	}

	set := make(map[string]string)
	uf.fs.Visit(func(f *flag.Flag) {
		set[f.Name] = *uf.values[f.Name]
	})
	return set, nil
}

func parseCreate(args []string) (models.CreateUserRequest, error) {
	set, err := newUserFlags("create").parse(args)
	if err != nil {
		return models.CreateUserRequest{}, fmt.Errorf("create: %w", err)
	}

	return models.CreateUserRequest{
		FirstName:   set["first"],
		LastName:    set["last"],
		Email:       set["email"],
		PhoneNumber: set["phone"],
		Department:  set["department"],
		Position:    set["position"],
		HireDate:    set["hire-date"],
	}, nil
}

func parseUpdate(args []string) (models.UpdateUserRequest, error) {
	set, err := newUserFlags("update").parse(args)
	if err != nil {
		return models.UpdateUserRequest{}, fmt.Errorf("update: %w", err)
	}
	if len(set) == 0 {
		return models.UpdateUserRequest{}, fmt.Errorf("update: no fields given")
	}

	field := func(name string) *string {
		v, ok := set[name]
		if !ok {
			return nil
		}
		return &v
	}

	return models.UpdateUserRequest{
		FirstName:   field("first"),
		LastName:    field("last"),
		Email:       field("email"),
		PhoneNumber: field("phone"),
		Department:  field("department"),
		Position:    field("position"),
		HireDate:    field("hire-date"),
	}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
