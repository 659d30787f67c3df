//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/dynamics"
	"github.com/suparena/dynamics/config"
	"github.com/suparena/dynamics/ddb"
	"github.com/suparena/dynamics/errors"
	"github.com/suparena/dynamics/internal/testmodels"
)

func setupClient(t *testing.T) (*sdk.Client, string) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	if cfg.AWS.Table == "" {
		t.Skip("DYNAMICS_AWS_TABLE not set, skipping integration test")
	}

	client, err := ddb.NewClient(context.Background(), cfg.AWS)
	require.NoError(t, err)
	return client, cfg.AWS.Table
}

func TestIntegrationLoadCountry(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, table := setupClient(t)
	pk := fmt.Sprintf("COUNTRY#test-%d", time.Now().Unix())

	item, err := attributevalue.MarshalMap(map[string]any{
		"PK":            pk,
		"SK":            "META",
		"id":            249,
		"name":          "United States",
		"currency_code": "USD",
	})
	require.NoError(t, err)
	_, err = client.PutItem(ctx, &sdk.PutItemInput{TableName: aws.String(table), Item: item})
	require.NoError(t, err)

	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: "META"},
	}
	t.Cleanup(func() {
		_, _ = client.DeleteItem(ctx, &sdk.DeleteItemInput{TableName: aws.String(table), Key: key})
	})

	engine := dynamics.NewEngine()
	loader := ddb.NewLoader[testmodels.Country](client, table, engine.Hydrator(), ddb.WithConsistentRead())

	country, err := loader.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "USD", country.CurrencyCode)

	name, err := engine.Call(country, "getName")
	require.NoError(t, err)
	assert.Equal(t, "United States", name)

	missing := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: "MISSING"},
	}
	_, err = loader.Load(ctx, missing)
	assert.True(t, errors.IsNotFound(err))
}
