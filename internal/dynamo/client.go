package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Client struct {
	api dynamodb.ListTablesAPIClient
}

// NewClient initializes a DynamoDB client. An empty endpoint keeps the
// regional AWS endpoint; set it to point at DynamoDB Local.
func NewClient(ctx context.Context, region string, endpoint string) (*Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if endpoint != "" {
		opts = append(opts, config.WithBaseEndpoint(endpoint))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("Unable to load AWS config: %w", err)
	}

	return NewFromAPI(dynamodb.NewFromConfig(cfg)), nil
}

func NewFromAPI(api dynamodb.ListTablesAPIClient) *Client {
	return &Client{api: api}
}

// ListTableNames walks every ListTables page and keeps the order the
// service reports.
func (c *Client) ListTableNames(ctx context.Context) ([]string, error) {
	names := []string{}

	paginator := dynamodb.NewListTablesPaginator(c.api, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tables: %w", err)
		}
		names = append(names, page.TableNames...)
	}

	return names, nil
}
