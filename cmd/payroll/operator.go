package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrledger/payroll-system/internal/core/domain"
	mongostore "github.com/hrledger/payroll-system/internal/infrastructure/db/mongo"
	"github.com/hrledger/payroll-system/internal/pkg/config"
)

func newOperatorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Manage accounts that may log in to the HTTP API",
	}
	cmd.AddCommand(newOperatorHashCmd(), newOperatorAddCmd())
	return cmd
}

func newOperatorHashCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH or VIEWER_PASSWORD_HASH",
		RunE: func(cmd *cobra.Command, _ []string) error {
			hash, err := hashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password to hash")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newOperatorAddCmd() *cobra.Command {
	var username, role, password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create or update an operator in MongoDB",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			if cfg.Mongo.URI == "" {
				return errors.New("MONGO_URI is required to store operators")
			}
			if !domain.ValidRole(role) {
				return fmt.Errorf("role must be %s or %s", domain.RoleAdmin, domain.RoleViewer)
			}

			hash, err := hashPassword(password)
			if err != nil {
				return err
			}

			client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			r := mongostore.NewOperatorRepository(db)
			if err := bootstrapOperators(ctx, r, []domain.User{{Username: username, PasswordHash: hash, Role: role}}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OPERATOR SAVED: %s (%s)\n", username, role)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&role, "role", domain.RoleViewer, "admin or viewer")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
