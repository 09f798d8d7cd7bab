package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildUpdate(t *testing.T) {
	allowed := []string{"name", "status", "notes"}
	updates := map[string]interface{}{
		"name":   "Oficina 101",
		"status": "occupied",
	}

	query, args, ok := BuildUpdate("offices", allowed, updates, "office-1")
	require.True(t, ok)
	require.Equal(t, "UPDATE offices SET name = $1, status = $2 WHERE id = $3", query)
	require.Equal(t, []interface{}{"Oficina 101", "occupied", "office-1"}, args)
}

func TestBuildUpdateIgnoresUnknownColumns(t *testing.T) {
	allowed := []string{"status"}
	updates := map[string]interface{}{
		"status": "available",
		"role":   "admin",
	}

	query, args, ok := BuildUpdate("offices", allowed, updates, "office-1")
	require.True(t, ok)
	require.Equal(t, "UPDATE offices SET status = $1 WHERE id = $2", query)
	require.Equal(t, []interface{}{"available", "office-1"}, args)
}

func TestBuildUpdateNoAllowedColumns(t *testing.T) {
	_, _, ok := BuildUpdate("offices", []string{"status"}, map[string]interface{}{"role": "admin"}, "x")
	require.False(t, ok)

	_, _, ok = BuildUpdate("offices", []string{"status"}, nil, "x")
	require.False(t, ok)
}

func TestBuildUpdateKeepsNilValues(t *testing.T) {
	query, args, ok := BuildUpdate("offices", []string{"client_id"}, map[string]interface{}{"client_id": nil}, "office-1")
	require.True(t, ok)
	require.Equal(t, "UPDATE offices SET client_id = $1 WHERE id = $2", query)
	require.Nil(t, args[0])
}
