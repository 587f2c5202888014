package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_RunAndShutdown(t *testing.T) {
	// Arrange
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	port := freePort(t)
	gs := NewGracefulServer(e, logger.NewNop(), "127.0.0.1", port).WithShutdownTimeout(time.Second)

	cleaned := false
	gs.OnShutdown(func(ctx context.Context) error {
		cleaned = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	// Act
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	resp.Body.Close()
	cancel()

	// Assert
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, cleaned)
}

func TestGracefulServer_StartFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, logger.NewNop(), "127.0.0.1", port)

	err = gs.Run(context.Background())

	assert.Error(t, err)
}

func TestShutdownManager_Order(t *testing.T) {
	sm := NewShutdownManager(logger.NewNop())
	var order []int
	for i := 0; i < 3; i++ {
		index := i
		sm.Register(func(ctx context.Context) error {
			order = append(order, index)
			if index == 1 {
				return fmt.Errorf("cleanup%d failed", index)
			}
			return nil
		})
	}
	sm.Register(nil)

	err := sm.Shutdown(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestShutdownManager_ConcurrentRegister(t *testing.T) {
	sm := NewShutdownManager(logger.NewNop())
	var wg sync.WaitGroup
	var mu sync.Mutex
	calls := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Register(func(ctx context.Context) error {
				mu.Lock()
				calls++
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, 10, calls)
}
