package database

import (
	"errors"
	"time"

	"github.com/PancyStudios/PancyCommandsGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDeployManagerNotInitialized = errors.New("deployment data manager not initialized")

func getDeployManager() (*DataManager[models.DeploymentRecord], error) {
	if GlobalDeployDM == nil {
		return nil, ErrDeployManagerNotInitialized
	}
	return GlobalDeployDM, nil
}

// RecordDeployment stores one deployment for auditing
func RecordDeployment(record models.DeploymentRecord) error {
	dm, err := getDeployManager()
	if err != nil {
		return err
	}

	if record.DeployedAt.IsZero() {
		record.DeployedAt = time.Now()
	}

	return dm.Insert(record)
}

// GetLatestDeployment returns the most recent deployment, nil when none exists
func GetLatestDeployment() (*models.DeploymentRecord, error) {
	records, err := GetDeploymentHistory(1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// GetDeploymentHistory returns the most recent deployments, newest first
func GetDeploymentHistory(limit int) ([]*models.DeploymentRecord, error) {
	dm, err := getDeployManager()
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.M{"deployed_at": -1}).
		SetLimit(int64(limit))

	return dm.GetAll(bson.M{}, opts)
}
