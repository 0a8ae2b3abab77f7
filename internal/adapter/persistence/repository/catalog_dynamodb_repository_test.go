package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDynamoRepository(t *testing.T) {
	t.Run("link type", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(tipoEnlaceItem{ID: 3, Nombre: "Cortesia", SinCargo: true, Activo: true})
		require.NoError(t, err)
		ddb := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: item}}
		repo := NewCatalogDynamoRepository(ddb, "empresas", "tipos")

		tipo, err := repo.GetTipoEnlace(context.Background(), 3)
		require.NoError(t, err)
		assert.True(t, tipo.SinCargo)
		assert.Equal(t, "tipos", aws.ToString(ddb.getIn.TableName))
	})

	t.Run("unknown company", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewCatalogDynamoRepository(ddb, "empresas", "tipos")

		empresa, err := repo.GetEmpresa(context.Background(), 99)
		require.NoError(t, err)
		assert.Zero(t, empresa.ID)
		assert.Equal(t, "empresas", aws.ToString(ddb.getIn.TableName))
	})
}
