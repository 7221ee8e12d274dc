package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"

	"quizhub/internal/auth"
	"quizhub/internal/config"
	"quizhub/internal/database"
	"quizhub/internal/handler"
	"quizhub/internal/middleware"
	"quizhub/internal/quiz"
	"quizhub/internal/repository"
	"quizhub/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not loaded, continuing with environment variables")
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	bank, err := quiz.LoadBank(cfg.QuestionsPath)
	if err != nil {
		slog.Error("question bank load failed", "path", cfg.QuestionsPath, "error", err)
		os.Exit(1)
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		// Sessions won't survive a restart without a configured secret.
		secret = securecookie.GenerateRandomKey(32)
		slog.Warn("SESSION_SECRET not set, generated an ephemeral key")
	}
	sessions := session.NewManager(secret)

	userRepo := repository.NewUserRepository(db)
	resultRepo := repository.NewResultRepository(db)
	authService := auth.NewService(userRepo)

	authHandler := handler.NewAuthHandler(authService, sessions)
	dashboardHandler := handler.NewDashboardHandler(bank, sessions)
	quizHandler := handler.NewQuizHandler(bank, sessions)
	resultHandler := handler.NewResultHandler(resultRepo, sessions)
	rankingHandler := handler.NewRankingHandler(resultRepo, sessions)

	mw := middleware.New(sessions)
	authed := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(h) }
	admin := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(mw.RequireAdmin(h)) }

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	mux.HandleFunc("GET /{$}", authHandler.LoginPage)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /logout", authHandler.Logout)
	mux.Handle("GET /dashboard", authed(dashboardHandler.Dashboard))
	mux.Handle("GET /quizzes", authed(dashboardHandler.ChooseQuiz))
	mux.Handle("GET /quiz/{category}", authed(quizHandler.Quiz))
	mux.Handle("POST /results", authed(resultHandler.Submit))
	mux.Handle("GET /my-results", authed(resultHandler.MyResults))
	mux.Handle("GET /ranking", admin(rankingHandler.Ranking))

	slog.Info("server listening", "addr", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
