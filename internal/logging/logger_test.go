package logging

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_FallsBackToStandard(t *testing.T) {
	assert.Same(t, logrus.StandardLogger(), Logger(context.Background()))
}

func TestLogger_FromContext(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := WithLogger(context.Background(), logger.WithField("pkg", "astar"))

	Logger(ctx).Info("expanded")

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "expanded", hook.LastEntry().Message)
	assert.Equal(t, "astar", hook.LastEntry().Data["pkg"])
}
