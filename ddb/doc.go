/*
Package ddb hydrates annotated structs from DynamoDB items.

Items are unmarshalled into plain Go values with the attributevalue package and
then run through the same alias resolution as any other input, so a table that
stores "currency_code" fills a field declared as

	CurrencyCode string `json:"currencyCode" accepts:"['currency_code', 'currency']"`

Loader wraps a GetItem client for one table:

	client, _ := ddb.NewClient(ctx, cfg.AWS)
	loader := ddb.NewLoader[Country](client, "countries", engine.Hydrator())
	country, err := loader.Load(ctx, map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "COUNTRY#US"},
	})

A missing item yields errors.NotFoundError.
*/
package ddb
