// Command createadmin bootstraps a staff (admin or editor) account in the
// users table.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"atelie/internal/adapter/persistence/repository"
	"atelie/internal/config"
	"atelie/internal/domain/entities"
	"atelie/internal/infrastructure/auth"
	"atelie/internal/infrastructure/database"
	"atelie/internal/infrastructure/logging"
	"atelie/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	adminEmail    string
	adminName     string
	adminPassword string
	adminRole     string
)

var rootCmd = &cobra.Command{
	Use:   "createadmin",
	Short: "Create an admin or editor user",
	Long: `Create a staff user able to log into the admin area.

The password may be given with --password or the ADMIN_PASSWORD
environment variable. Running it again for an existing e-mail is a no-op.`,
	SilenceUsage: true,
	RunE:         runCreateAdmin,
}

func init() {
	rootCmd.Flags().StringVar(&adminEmail, "email", "admin@ateliedacosturacriativa.com.br", "login e-mail")
	rootCmd.Flags().StringVar(&adminName, "name", "Administrador", "display name")
	rootCmd.Flags().StringVar(&adminPassword, "password", "", "password (default $ADMIN_PASSWORD)")
	rootCmd.Flags().StringVar(&adminRole, "role", string(entities.RoleAdmin), "admin | editor")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	role, ok := entities.ParseRole(adminRole)
	if !ok || !role.IsStaff() {
		return fmt.Errorf("invalid role %q: use admin or editor", adminRole)
	}
	password := adminPassword
	if password == "" {
		password = os.Getenv("ADMIN_PASSWORD")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.IsDevelopment())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	users := repository.NewUserDynamoRepository(database.ConnectDynamoDB(awsCfg, cfg.Tables.Endpoint), cfg.Tables.Users)

	// Token issuing is not used here, any non-empty secret will do.
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret = "createadmin"
	}
	tokens, err := auth.NewJWTTokenIssuer(secret, cfg.Auth.JWTTTL)
	if err != nil {
		return err
	}

	uc := usecase.NewAuthUseCase(users, tokens, auth.NewBcryptHasher(0), logger)
	u, err := uc.CreateStaffUser(ctx, usecase.SignupInput{Name: adminName, Email: adminEmail, Password: password}, role)
	if errors.Is(err, usecase.ErrEmailAlreadyRegistered) {
		fmt.Fprintf(cmd.OutOrStdout(), "User %s already exists\n", adminEmail)
		return nil
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	logger.Info("staff user created", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s user %s (%s)\n", u.Role, u.Email, u.ID)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
