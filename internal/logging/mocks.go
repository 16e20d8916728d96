package logging

//go:generate mockgen -destination ../mocks/logging_mocks.go -package mocks -mock_names Logger=LoggerMock github.com/sirkon/ranklist/internal/logging Logger
