package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatisticsEmptyTable(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/statistics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalStudents int                      `json:"totalStudents"`
		AvgAge        *float64                 `json:"avgAge"`
		Advisors      []map[string]interface{} `json:"advisors"`
		Statuses      []map[string]interface{} `json:"statuses"`
	}
	decodeBody(t, resp, &stats)

	require.Zero(t, stats.TotalStudents)
	require.Nil(t, stats.AvgAge)
	require.NotNil(t, stats.Advisors)
	require.Empty(t, stats.Advisors)
	require.NotNil(t, stats.Statuses)
	require.Empty(t, stats.Statuses)
}

func TestStatisticsAggregates(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/students",
		`{"student_id": "X1", "full_name": "A", "age": 40, "main_advisor": "ผศ.ดร.ขนิตฐา", "status": "active"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/students",
		`{"student_id": "X2", "full_name": "B", "age": 30, "main_advisor": "ผศ.ดร.ขนิตฐา", "status": "active"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/students",
		`{"student_id": "X3", "full_name": "C", "status": "leave"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/statistics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalStudents int      `json:"totalStudents"`
		AvgAge        *float64 `json:"avgAge"`
		Advisors      []struct {
			MainAdvisor *string `json:"main_advisor"`
			Count       int     `json:"count"`
		} `json:"advisors"`
		Statuses []struct {
			Status *string `json:"status"`
			Count  int     `json:"count"`
		} `json:"statuses"`
	}
	decodeBody(t, resp, &stats)

	require.Equal(t, 3, stats.TotalStudents)
	require.NotNil(t, stats.AvgAge)
	require.Equal(t, 35.0, *stats.AvgAge, "null ages stay out of the average")

	require.Len(t, stats.Advisors, 2)
	require.Equal(t, "ผศ.ดร.ขนิตฐา", *stats.Advisors[0].MainAdvisor)
	require.Equal(t, 2, stats.Advisors[0].Count)
	require.Nil(t, stats.Advisors[1].MainAdvisor)

	require.Len(t, stats.Statuses, 2)
	require.Equal(t, 2, stats.Statuses[0].Count)
}
