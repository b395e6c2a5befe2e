package database

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/logger"
	"github.com/PancyStudios/PancyCommandsGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Alias de tipos para facilitar el acceso
type CommandUsage = models.CommandUsage

var ErrUsageManagerNotInitialized = errors.New("usage data manager not initialized")

// usageCounters keeps per-command invocation counts in memory
type usageCounters struct {
	counts   map[string]int64
	mu       sync.RWMutex
	ticker   *time.Ticker
	done     chan bool
	stopOnce sync.Once
}

var usageCache = &usageCounters{
	counts: make(map[string]int64),
	done:   make(chan bool),
}

// InitUsageCounters loads the usage counters from the database
// Should be called at bot startup after InitGlobalDataManagers
func InitUsageCounters() error {
	return RefreshUsageCounters()
}

// StartUsageCounterRefresh starts a goroutine that refreshes the counters every 5 minutes
func StartUsageCounterRefresh() {
	usageCache.ticker = time.NewTicker(5 * time.Minute)

	go func() {
		for {
			select {
			case <-usageCache.done:
				return
			case <-usageCache.ticker.C:
				if err := RefreshUsageCounters(); err != nil {
					logger.Error("Error refrescando contadores de uso: "+err.Error(), "UsageCache")
				} else {
					logger.Debug("Contadores de uso refrescados automáticamente", "UsageCache")
				}
			}
		}
	}()

	logger.System("Sistema de contadores de uso iniciado (refresco cada 5 minutos)", "UsageCache")
}

// StopUsageCounterRefresh stops the counter refresh goroutine
func StopUsageCounterRefresh() {
	usageCache.stopOnce.Do(func() {
		if usageCache.ticker != nil {
			usageCache.ticker.Stop()
		}
		close(usageCache.done)
	})
}

// RefreshUsageCounters reloads all per-command counts from the database
func RefreshUsageCounters() error {
	dm, err := getUsageManager()
	if err != nil {
		return err
	}

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$command_name", "count": bson.M{"$sum": 1}}},
	}

	var results []models.CommandUsageCount
	if err := dm.Aggregate(pipeline, &results); err != nil {
		return err
	}

	usageCache.mu.Lock()
	defer usageCache.mu.Unlock()

	usageCache.counts = make(map[string]int64)
	for _, r := range results {
		usageCache.counts[r.CommandName] = r.Count
	}

	logger.Info(fmt.Sprintf("Contadores de uso cargados: %d comandos", len(usageCache.counts)), "UsageCache")
	return nil
}

func getUsageManager() (*DataManager[models.CommandUsage], error) {
	if GlobalUsageDM == nil {
		return nil, ErrUsageManagerNotInitialized
	}
	return GlobalUsageDM, nil
}

// RecordCommandUsage stores one invocation and bumps the in-memory counter
func RecordCommandUsage(usage models.CommandUsage) error {
	dm, err := getUsageManager()
	if err != nil {
		return err
	}

	if usage.InvokedAt.IsZero() {
		usage.InvokedAt = time.Now()
	}

	if err := dm.Insert(usage); err != nil {
		return err
	}

	usageCache.mu.Lock()
	usageCache.counts[usage.CommandName]++
	usageCache.mu.Unlock()

	return nil
}

// GetCommandUsageCount returns the cached invocation count for a command
func GetCommandUsageCount(commandName string) int64 {
	usageCache.mu.RLock()
	defer usageCache.mu.RUnlock()
	return usageCache.counts[commandName]
}

// GetTotalUsageCount returns the cached total invocation count across all commands
func GetTotalUsageCount() int64 {
	usageCache.mu.RLock()
	defer usageCache.mu.RUnlock()

	var total int64
	for _, c := range usageCache.counts {
		total += c
	}
	return total
}

// GetTopCommands returns the most invoked commands, ordered by count
func GetTopCommands(limit int) ([]models.CommandUsageCount, error) {
	dm, err := getUsageManager()
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$command_name", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": limit},
	}

	var results []models.CommandUsageCount
	if err := dm.Aggregate(pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetUsageSince counts invocations recorded after the given time
func GetUsageSince(since time.Time) (int64, error) {
	dm, err := getUsageManager()
	if err != nil {
		return 0, err
	}

	pipeline := []bson.M{
		{"$match": bson.M{"invoked_at": bson.M{"$gte": since}}},
		{"$count": "count"},
	}

	type countResult struct {
		Count int64 `bson:"count"`
	}

	var results []countResult
	if err := dm.Aggregate(pipeline, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Count, nil
}
