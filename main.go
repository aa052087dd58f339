package main

import (
	"fmt"
	"os"
)

// @title ATS backend API
// @version 1.0
// @description Hiring pipeline tracker: requirements, candidates, stage progress and reports.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
