package main

import (
	"net/http"

	"studyflow/planner/config"
	"studyflow/planner/middleware"
	"studyflow/planner/routes"
	"studyflow/planner/supabase"
)

func main() {
	config.LoadEnv()
	config.InitLogger()
	supabase.Init()

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	addr := config.ListenAddr()
	config.Logger.Info("Server is running on ", addr)
	config.Logger.Fatal(http.ListenAndServe(addr, handler))
}
