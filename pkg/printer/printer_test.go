package printer

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUSBPrinter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	p := NewUSBPrinter(path)
	assert.True(t, p.IsConnected())

	require.NoError(t, p.Print([]byte("hello")))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), written)
}

func TestUSBPrinter_MissingDevice(t *testing.T) {
	p := NewUSBPrinter(filepath.Join(t.TempDir(), "missing"))

	assert.False(t, p.IsConnected())

	err := p.Print([]byte("hello"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open USB device")
}

func TestNetworkPrinter(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	received := make(chan []byte, 1)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			data, _ := io.ReadAll(conn)
			conn.Close()
			if len(data) > 0 {
				received <- data
			}
		}
	}()

	p := NewNetworkPrinter(ln.Addr().String(), time.Second)
	assert.True(t, p.IsConnected())

	require.NoError(t, p.Print([]byte{ESC, '@', 'h', 'i'}))

	select {
	case data := <-received:
		assert.Equal(t, []byte{ESC, '@', 'h', 'i'}, data)
	case <-time.After(2 * time.Second):
		t.Fatal("printer data never arrived")
	}
}

func TestNetworkPrinter_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	p := NewNetworkPrinter(addr, 200*time.Millisecond)

	assert.False(t, p.IsConnected())

	err = p.Print([]byte("hi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to")
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "", 0)
	require.NoError(t, err)
	assert.NoError(t, p.Print([]byte("ignored")))
	assert.False(t, p.IsConnected())

	p, err = NewPrinterFromConfig("", "", "", 0)
	require.NoError(t, err)
	assert.NoError(t, p.Print(nil))

	_, err = NewPrinterFromConfig("usb", "", "", 0)
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "", 0)
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("laser", "", "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown printer type")

	p, err = NewPrinterFromConfig("usb", "/dev/usb/lp0", "", 0)
	require.NoError(t, err)
	require.IsType(t, &usbPrinter{}, p)

	p, err = NewPrinterFromConfig("network", "", "127.0.0.1:9100", 0)
	require.NoError(t, err)
	np, ok := p.(*networkPrinter)
	require.True(t, ok)
	assert.Equal(t, DefaultTimeout, np.timeout, "non-positive timeout falls back to the default")
}
