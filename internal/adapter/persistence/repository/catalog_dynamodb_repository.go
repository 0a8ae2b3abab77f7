package repository

import (
	"context"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultEmpresasTableName    = "empresas"
	defaultTiposEnlaceTableName = "tipos_enlace"
)

type empresaItem struct {
	ID     int64  `dynamodbav:"id"`
	Nombre string `dynamodbav:"nombre"`
	Activo bool   `dynamodbav:"activo"`
}

type tipoEnlaceItem struct {
	ID       int64  `dynamodbav:"id"`
	Nombre   string `dynamodbav:"nombre"`
	SinCargo bool   `dynamodbav:"sin_cargo"`
	Activo   bool   `dynamodbav:"activo"`
}

// CatalogDynamoRepository reads the company and link type catalogs. The
// catalogs are maintained elsewhere; this service never writes them.
type CatalogDynamoRepository struct {
	ddb              DynamoAPI
	empresasTable    string
	tiposEnlaceTable string
}

var _ interfaces.ICatalogGateway = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, empresasTable, tiposEnlaceTable string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:              ddb,
		empresasTable:    tableName(empresasTable, "EMPRESAS_TABLE", defaultEmpresasTableName),
		tiposEnlaceTable: tableName(tiposEnlaceTable, "TIPOS_ENLACE_TABLE", defaultTiposEnlaceTableName),
	}
}

func (r *CatalogDynamoRepository) GetEmpresa(ctx context.Context, id int64) (entities.Empresa, error) {
	var it empresaItem
	found, err := r.get(ctx, r.empresasTable, id, &it)
	if err != nil || !found {
		return entities.Empresa{}, err
	}
	return entities.Empresa{ID: it.ID, Nombre: it.Nombre, Activo: it.Activo}, nil
}

func (r *CatalogDynamoRepository) GetTipoEnlace(ctx context.Context, id int64) (entities.TipoEnlace, error) {
	var it tipoEnlaceItem
	found, err := r.get(ctx, r.tiposEnlaceTable, id, &it)
	if err != nil || !found {
		return entities.TipoEnlace{}, err
	}
	return entities.TipoEnlace{ID: it.ID, Nombre: it.Nombre, SinCargo: it.SinCargo, Activo: it.Activo}, nil
}

func (r *CatalogDynamoRepository) get(ctx context.Context, table string, id int64, dst any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       numberKey(id),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(out.Item, dst)
}
