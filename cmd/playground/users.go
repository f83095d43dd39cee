package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sakif/go-examples/internal/apperror"
	"github.com/sakif/go-examples/internal/config"
	"github.com/sakif/go-examples/internal/model"
	"github.com/sakif/go-examples/internal/repository"
	"github.com/sakif/go-examples/internal/repository/memory"
	"github.com/sakif/go-examples/internal/repository/sqlite"
	"github.com/sakif/go-examples/internal/service"
)

func newUsersCmd(a *app) *cobra.Command {
	var store, dbPath string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Walk through the record manager",
		Long:  "Creates, updates, lists and deletes users, printing each result and every rejected operation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if store != "" {
				cfg.UserStore = store
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			repo, closeRepo, err := openUserStore(cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			svc := service.NewUserService(repo, a.logger)
			return runUsersDemo(cmd.Context(), cmd.OutOrStdout(), svc)
		},
	}
	cmd.Flags().StringVar(&store, "store", "", "backend: memory|sqlite (default from USER_STORE)")
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite DSN (default from DB_PATH or :memory:)")
	return cmd
}

// openUserStore returns the configured backend and a func that releases it.
func openUserStore(cfg config.Config) (repository.UserRepository, func(), error) {
	if cfg.UserStore == config.StoreSQLite {
		db, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return db, func() { db.Close() }, nil
	}
	return memory.New(), func() {}, nil
}

func runUsersDemo(ctx context.Context, w io.Writer, svc *service.UserService) error {
	step := func(label string, u *model.User, err error) error {
		var appErr *apperror.AppError
		switch {
		case err == nil:
			fmt.Fprintf(w, "%-28s ok   id=%d username=%s email=%s\n", label, u.ID, u.Username, u.Email)
		case errors.As(err, &appErr):
			fmt.Fprintf(w, "%-28s fail %s\n", label, appErr.Message)
		default:
			return err
		}
		return nil
	}

	alice, err := svc.Create(ctx, "alice", "alice@example.com", model.StringPtr("Alice"), nil)
	if err := step("create alice", alice, err); err != nil {
		return err
	}
	bob, err := svc.Create(ctx, "bob", "bob@example.com", nil, model.StringPtr("Builder"))
	if err := step("create bob", bob, err); err != nil {
		return err
	}
	u, err := svc.Create(ctx, "alice", "other@example.com", nil, nil)
	if err := step("create duplicate alice", u, err); err != nil {
		return err
	}
	u, err = svc.Create(ctx, "carol", "not-an-email", nil, nil)
	if err := step("create with bad email", u, err); err != nil {
		return err
	}
	if alice != nil {
		u, err = svc.Update(ctx, alice.ID, model.UserPatch{Email: model.StringPtr("alice@work.example.com")})
		if err := step("update alice email", u, err); err != nil {
			return err
		}
	}
	if bob != nil {
		if err := svc.Delete(ctx, bob.ID); err != nil {
			return err
		}
		fmt.Fprintf(w, "%-28s ok   id=%d\n", "delete bob", bob.ID)
		u, err = svc.GetByID(ctx, bob.ID)
		if err := step("get deleted bob", u, err); err != nil {
			return err
		}
	}
	u, err = svc.Create(ctx, "bob", "bob2@example.com", nil, nil)
	if err := step("re-create bob", u, err); err != nil {
		return err
	}

	users, err := svc.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tCREATED\tUPDATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email,
			u.CreatedAt.Format("15:04:05.000"), u.UpdatedAt.Format("15:04:05.000"))
	}
	return tw.Flush()
}
