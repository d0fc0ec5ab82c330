package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/quickcare/backend-api-go/auth"
	"github.com/quickcare/backend-api-go/cache"
	"github.com/quickcare/backend-api-go/config"
	"github.com/quickcare/backend-api-go/hospitals"
	"github.com/quickcare/backend-api-go/location"
	"github.com/quickcare/backend-api-go/recommender"
	"github.com/quickcare/backend-api-go/repository"
	"github.com/quickcare/backend-api-go/result"
	"github.com/quickcare/backend-api-go/viewstate"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quickcare",
		Short: "Find hospitals near you for a symptom or specialty",
	}

	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(conditionsCmd())
	rootCmd.AddCommand(signupCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func recommendCmd() *cobra.Command {
	var (
		lat, lon  float64
		device    string
		condition string
		topN      int
		useGet    bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend hospitals near a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			hasLat, hasLon := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
			if hasLat != hasLon {
				return errors.New("--lat and --lon must be given together")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client := recommender.NewClient(cfg.RecommenderAPIURL)
			var api repository.RecommendationAPI = client
			if useGet {
				api = queryAPI{client}
			}

			var source location.Source = location.NewStaticSource(nil)
			if device != "" && !hasLat {
				cacheRepo := cache.NewRedisRepository(cfg.RedisAddr, cfg.RedisPassword)
				defer cacheRepo.Close()
				source = location.NewCacheSource(cacheRepo, device)
			}
			holder := viewstate.NewRecommendationHolder(repository.NewHospitalRepository(api), location.NewLocator(source))

			ctx, cancel := withTimeout(cmd.Context(), timeout)
			defer cancel()

			wait := watch(ctx, holder.Results(), cmd.OutOrStdout(), printSearchResult)
			r := search(ctx, holder, hasLat, lat, lon, condition, topN)
			wait()
			if r.IsError() {
				return errors.New(r.Message())
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude of the search point")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude of the search point")
	cmd.Flags().StringVar(&device, "device", "", "search near the last location this device reported")
	cmd.Flags().StringVar(&condition, "condition", "", "symptom or specialty, e.g. \"Chest Pain\"")
	cmd.Flags().IntVar(&topN, "top-n", hospitals.DefaultTopN, "maximum number of hospitals")
	cmd.Flags().BoolVar(&useGet, "get", false, "send the search as query parameters instead of a JSON body")
	cmd.Flags().Bool("post", true, "send the search as a JSON body")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout, 0 for none")
	cmd.MarkFlagsMutuallyExclusive("get", "post")
	cmd.MarkFlagsMutuallyExclusive("lat", "device")

	return cmd
}

// search uses explicit coordinates when given, the located fix otherwise.
func search(ctx context.Context, holder *viewstate.RecommendationHolder, explicit bool, lat, lon float64, condition string, topN int) result.Result[hospitals.SearchResult] {
	if explicit {
		return holder.GetRecommendations(ctx, lat, lon, condition, topN)
	}
	holder.RequestLocation(ctx)
	return holder.SearchNearby(ctx, condition, topN)
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the recommendation backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			r := repository.NewHospitalRepository(recommender.NewClient(cfg.RecommenderAPIURL)).CheckHealth(cmd.Context())
			data, ok := r.Data()
			if !ok {
				return errors.New(r.Message())
			}
			printHealth(cmd.OutOrStdout(), data)
			return nil
		},
	}
}

func conditionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conditions",
		Short: "List the quick care conditions",
		RunE: func(cmd *cobra.Command, args []string) error {
			printConditions(cmd.OutOrStdout(), hospitals.QuickCareConditions)
			return nil
		},
	}
}

func signupCmd() *cobra.Command {
	var email, password, username, phone, imagePath string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and its profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := viewstate.SignupForm{Email: email, Password: password, Username: username, Phone: phone}
			if imagePath != "" {
				img, err := readImage(imagePath)
				if err != nil {
					return err
				}
				form.Image = img
			}

			repo, err := openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer repo.Close()

			out := cmd.OutOrStdout()
			var notices []string
			holder := viewstate.NewSignupHolder(auth.NewPasswordProvider(repo), repo,
				func(message string) { notices = append(notices, message) },
				nil)

			wait := watch(cmd.Context(), holder.State(), out, printUserID)
			r := holder.SignUp(cmd.Context(), form)
			wait()
			for _, notice := range notices {
				fmt.Fprintln(out, notice)
			}
			if r.IsError() {
				return errors.New(r.Message())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&username, "username", "", "display name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to a JPEG or PNG profile picture")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			repo, err := repository.New(cmd.Context(), cfg.DBConnStr)
			if err != nil {
				return err
			}
			defer repo.Close()

			out := cmd.OutOrStdout()
			holder := viewstate.NewLoginHolder(auth.NewPasswordProvider(repo), nil)

			wait := watch(cmd.Context(), holder.State(), out, printUserID)
			r := holder.LogIn(cmd.Context(), email, password)
			wait()
			userID, ok := r.Data()
			if !ok {
				return errors.New(r.Message())
			}

			tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiryMinutes)*time.Minute)
			token, err := tokens.Issue(userID, email)
			if err != nil {
				return fmt.Errorf("could not issue token: %w", err)
			}
			fmt.Fprintln(out, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer repo.Close()
			return repo.Migrate(cmd.Context())
		},
	}
}

func openRepository(ctx context.Context) (*repository.Repository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return repository.New(ctx, cfg.DBConnStr)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// queryAPI sends searches as GET query parameters.
type queryAPI struct {
	*recommender.Client
}

func (q queryAPI) Recommend(ctx context.Context, req hospitals.SearchRequest) (*hospitals.SearchResult, error) {
	return q.Client.RecommendByQuery(ctx, req)
}
