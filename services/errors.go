package services

import "errors"

// Общие ошибки сервисного слоя, хендлеры маппят их в HTTP-статусы.
var (
	// Ресурс не найден
	ErrHeroNotFound = errors.New("hero not found")
	ErrTeamNotFound = errors.New("team not found")

	// Ошибки операций (оборачивают причину, маппятся в 500)
	ErrHeroCreateFailed = errors.New("failed to create hero")
	ErrHeroUpdateFailed = errors.New("failed to update hero")
	ErrHeroDeleteFailed = errors.New("failed to delete hero")
	ErrTeamCreateFailed = errors.New("failed to create team")
	ErrTeamUpdateFailed = errors.New("failed to update team")
	ErrTeamDeleteFailed = errors.New("failed to delete team")
)
