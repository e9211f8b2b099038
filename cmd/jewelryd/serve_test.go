package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"jewelry-production-service/internal/auth"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/logger"
	"jewelry-production-service/internal/repository/memory"
)

func TestSeedOwner_TokenGoesToWriterOnly(t *testing.T) {
	color.NoColor = true
	core, logs := observer.New(zapcore.DebugLevel)
	db := memory.NewDB()
	a := &app{log: &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, memDB: db}
	tokens := auth.NewTokenService("serve-test-secret-0123456789", time.Hour)

	var out bytes.Buffer
	require.NoError(t, seedOwner(a, tokens, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	tok := lines[1]

	claims, err := tokens.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, claims.Role)
	u, err := memory.NewStore(db).Users().GetByID(context.Background(), claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "owner", u.Username)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "seeded owner account", entry.Message)
	for k, v := range entry.ContextMap() {
		assert.NotEqual(t, "token", k)
		assert.NotContains(t, fmt.Sprint(v), tok)
	}
}
