/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/dynamics/errors"
	"github.com/suparena/dynamics/hydrate"
)

// GetItem reads one item and returns it as plain Go values. A missing item is
// reported as errors.NotFoundError.
func GetItem(ctx context.Context, client GetItemAPI, table string, key map[string]types.AttributeValue, consistent bool) (map[string]any, error) {
	out, err := client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(consistent),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(table, FormatKey(key))
	}
	return ItemMap(out.Item)
}

// Loader reads items of one table and hydrates them into T.
type Loader[T any] struct {
	client     GetItemAPI
	table      string
	hydrator   *hydrate.Hydrator
	logger     *zap.Logger
	consistent bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	logger     *zap.Logger
	consistent bool
}

// WithLogger sets the loader's logger.
func WithLogger(l *zap.Logger) LoaderOption {
	return func(o *loaderOptions) {
		o.logger = l
	}
}

// WithConsistentRead makes every read strongly consistent.
func WithConsistentRead() LoaderOption {
	return func(o *loaderOptions) {
		o.consistent = true
	}
}

// NewLoader creates a Loader for table.
func NewLoader[T any](client GetItemAPI, table string, h *hydrate.Hydrator, opts ...LoaderOption) *Loader[T] {
	o := loaderOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Loader[T]{
		client:     client,
		table:      table,
		hydrator:   h,
		logger:     o.logger,
		consistent: o.consistent,
	}
}

// Load fetches the item with the given primary key and hydrates a new T from it.
func (l *Loader[T]) Load(ctx context.Context, key map[string]types.AttributeValue) (*T, error) {
	input, err := GetItem(ctx, l.client, l.table, key, l.consistent)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("hydrating item", zap.String("table", l.table), zap.String("key", FormatKey(key)), zap.Int("attributes", len(input)))
	result, err := hydrate.New[T](l.hydrator, input)
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate item %s: %w", FormatKey(key), err)
	}
	return result, nil
}
