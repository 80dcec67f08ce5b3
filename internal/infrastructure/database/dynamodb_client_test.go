package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfig(t *testing.T) {
	t.Run("explicit region", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBOptions{Region: "sa-east-1", Endpoint: "http://localhost:8000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "sa-east-1" {
			t.Fatalf("expected sa-east-1, got %s", cfg.Region)
		}
	})

	t.Run("region from env", func(t *testing.T) {
		t.Setenv("AWS_REGION", "eu-west-1")
		cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "eu-west-1" {
			t.Fatalf("expected eu-west-1, got %s", cfg.Region)
		}
	})
}
