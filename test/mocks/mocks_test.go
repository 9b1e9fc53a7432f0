package mocks_test

import (
	"github.com/UnknownOlympus/ecohub/internal/advisor"
	"github.com/UnknownOlympus/ecohub/internal/geocoding"
	"github.com/UnknownOlympus/ecohub/internal/repository"
	"github.com/UnknownOlympus/ecohub/test/mocks"
)

// The mocks are maintained by hand and must follow the interfaces they stand in for.
var (
	_ repository.Interface      = (*mocks.Repository)(nil)
	_ geocoding.Provider        = (*mocks.Provider)(nil)
	_ geocoding.GoogleAPIClient = (*mocks.GoogleAPIClient)(nil)
	_ advisor.ChatClient        = (*mocks.ChatClient)(nil)
)
