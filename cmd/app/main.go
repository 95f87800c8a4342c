package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Satyam7Parsad/hotel-management-system/config"
	"github.com/Satyam7Parsad/hotel-management-system/helper"
	"github.com/Satyam7Parsad/hotel-management-system/infras/otel"
	"github.com/Satyam7Parsad/hotel-management-system/infras/postgres"
	"github.com/Satyam7Parsad/hotel-management-system/internal/availability"
	bookingRepo "github.com/Satyam7Parsad/hotel-management-system/internal/domains/booking/repository"
	bookingService "github.com/Satyam7Parsad/hotel-management-system/internal/domains/booking/service"
	roomRepo "github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/repository"
	roomService "github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/service"
	"github.com/Satyam7Parsad/hotel-management-system/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	if err := helper.Up(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	otl := otel.New(cfg)

	db := postgres.Connect(cfg)
	store := postgres.NewStore(db, otl)

	ctx := context.Background()
	if err := store.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	engine := availability.New(otl)

	rooms := roomService.New(roomRepo.New(otl), engine, store, otl)
	bookings := bookingService.New(bookingRepo.New(otl), roomRepo.New(otl), engine, store, otl)

	totalRooms, err := rooms.TotalRooms(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count rooms")
	}

	activeBookings, err := bookings.ActiveCount(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count active bookings")
	}

	arrivals, err := bookings.TodayCheckIns(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count today's check-ins")
	}

	departures, err := bookings.TodayCheckOuts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count today's check-outs")
	}

	log.Info().
		Str("app", cfg.App.Name).
		Int("totalRooms", totalRooms).
		Int("activeBookings", activeBookings).
		Int("todayCheckIns", arrivals).
		Int("todayCheckOuts", departures).
		Msg("Hotel management core ready")
}
