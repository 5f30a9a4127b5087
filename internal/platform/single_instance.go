package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock. Connections to the guarded
// port from a later launch ask this instance to show itself.
type InstanceGuard struct {
	listener   net.Listener
	address    string
	onActivate func()
	wg         sync.WaitGroup
}

// AcquireSingleInstance attempts to bind a deterministic localhost port.
// onActivate, if not nil, runs each time another launch calls ActivateRunning.
func AcquireSingleInstance(appName string, onActivate func()) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	guard := &InstanceGuard{listener: listener, address: address, onActivate: onActivate}
	guard.wg.Add(1)
	go guard.serve()
	return guard, nil
}

// ActivateRunning pokes the instance that holds the lock for appName.
func ActivateRunning(appName string) error {
	conn, err := net.DialTimeout("tcp", instanceAddress(appName), time.Second)
	if err != nil {
		return fmt.Errorf("activate running instance: %w", err)
	}
	return conn.Close()
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.wg.Wait()
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve() {
	defer guard.wg.Done()
	for {
		conn, err := guard.listener.Accept()
		if err != nil {
			return
		}
		_ = conn.Close()
		if guard.onActivate != nil {
			guard.onActivate()
		}
	}
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
