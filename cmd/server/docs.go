package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Shrimp Farm Reporting API
// @version         0.1.0
// @description     Batch cost aggregation, biometric growth metrics, and dashboard KPIs for shrimp grow-out farms.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
