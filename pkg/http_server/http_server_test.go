package http_server

import (
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestServer_ShutdownClosesNotify(t *testing.T) {
	s := New(http.NotFoundHandler(), "127.0.0.1:0", time.Second)

	if err := s.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	select {
	case err := <-s.Notify():
		if !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("Notify() = %v, want ErrServerClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Notify() did not deliver after shutdown")
	}
}

func TestServer_ListenErrorIsReported(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()

	s := New(http.NotFoundHandler(), taken.Addr().String(), time.Second)

	select {
	case err := <-s.Notify():
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			t.Errorf("Notify() = %v, want listen error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Notify() did not report the listen error")
	}
}
