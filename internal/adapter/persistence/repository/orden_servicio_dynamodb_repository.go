package repository

import (
	"context"
	"sort"
	"time"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdenesTableName = "ordenes_servicio"
	ordenesEstadoIndex      = "estado-index"
)

type ladoItem struct {
	IDODF     int64   `dynamodbav:"id_odf"`
	Puerto    string  `dynamodbav:"puerto"`
	FTP       string  `dynamodbav:"ftp"`
	CID       string  `dynamodbav:"cid"`
	Distancia float64 `dynamodbav:"distancia"`
}

type ordenServicioItem struct {
	ID                  int64     `dynamodbav:"id"`
	NumeroOrden         string    `dynamodbav:"numero_orden"`
	IDViabilidad        int64     `dynamodbav:"id_viabilidad"`
	Estado              int       `dynamodbav:"estado"`
	PuntoA              puntoItem `dynamodbav:"punto_a"`
	PuntoZ              puntoItem `dynamodbav:"punto_z"`
	IDEmpresa           int64     `dynamodbav:"id_empresa"`
	IDEmpresaConexion   int64     `dynamodbav:"id_empresa_conexion"`
	IDTipoConexion      int64     `dynamodbav:"id_tipo_conexion"`
	IDTipoEnlace        int64     `dynamodbav:"id_tipo_enlace"`
	MRCVenta            float64   `dynamodbav:"mrc_venta"`
	NRCVenta            float64   `dynamodbav:"nrc_venta"`
	MRCCosto            float64   `dynamodbav:"mrc_costo"`
	NRCCosto            float64   `dynamodbav:"nrc_costo"`
	LadoA               ladoItem  `dynamodbav:"lado_a"`
	LadoZ               ladoItem  `dynamodbav:"lado_z"`
	DescripcionServicio string    `dynamodbav:"descripcion_servicio"`
	Observaciones       string    `dynamodbav:"observaciones"`
	MotivoCancelacion   string    `dynamodbav:"motivo_cancelacion,omitempty"`
	FechaAprobacion     string    `dynamodbav:"fecha_aprobacion"`
	FechaCreacion       string    `dynamodbav:"fecha_creacion"`
	FechaActivacion     string    `dynamodbav:"fecha_activacion,omitempty"`
	FechaCompletado     string    `dynamodbav:"fecha_completado,omitempty"`
	FechaCancelacion    string    `dynamodbav:"fecha_cancelacion,omitempty"`
	UpdatedAt           string    `dynamodbav:"updated_at"`
}

// OrdenServicioDynamoRepository persists service orders in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: estado-index (PK: estado)
//
// Creating an order also stamps id_orden_servicio on the source viability in
// the same transaction, which is what keeps the viability/order link 1:1.

type OrdenServicioDynamoRepository struct {
	ddb             DynamoAPI
	tableName       string
	viabilidadTable string
}

var _ interfaces.IOrdenServicioRepository = (*OrdenServicioDynamoRepository)(nil)

func NewOrdenServicioDynamoRepository(ddb DynamoAPI, table, viabilidadTable string) *OrdenServicioDynamoRepository {
	return &OrdenServicioDynamoRepository{
		ddb:             ddb,
		tableName:       tableName(table, "SERVICE_ORDERS_TABLE", defaultOrdenesTableName),
		viabilidadTable: tableName(viabilidadTable, "VIABILITIES_TABLE", defaultViabilidadesTableName),
	}
}

func (r *OrdenServicioDynamoRepository) CreateFromViabilidad(ctx context.Context, o entities.OrdenServicio) (entities.OrdenServicio, error) {
	av, err := attributevalue.MarshalMap(toOrdenServicioItem(o))
	if err != nil {
		return entities.OrdenServicio{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(r.viabilidadTable),
					Key:                 numberKey(o.IDViabilidad),
					UpdateExpression:    aws.String("SET #orden = :orden, #updated_at = :now"),
					ConditionExpression: aws.String("attribute_exists(#id) AND #proceso = :aprobada AND #cancelada = :false AND #orden = :zero"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#orden":      "id_orden_servicio",
						"#proceso":    "id_proceso_viabilidad",
						"#cancelada":  "cancelada",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":orden":    intValue(o.ID),
						":now":      stringValue(formatTime(o.FechaCreacion)),
						":aprobada": intValue(int64(entities.ProcesoAprobada)),
						":false":    boolValue(false),
						":zero":     intValue(0),
					},
				},
			},
		},
	})
	if err != nil {
		return entities.OrdenServicio{}, conditionFailed(err)
	}
	return o, nil
}

func (r *OrdenServicioDynamoRepository) GetByID(ctx context.Context, id int64) (entities.OrdenServicio, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrdenServicio{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrdenServicio{}, nil
	}

	var it ordenServicioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrdenServicio{}, err
	}
	return fromOrdenServicioItem(it), nil
}

func (r *OrdenServicioDynamoRepository) ListByEstado(ctx context.Context, estado entities.EstadoOrden) ([]entities.OrdenServicio, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordenesEstadoIndex),
		KeyConditionExpression: aws.String("#estado = :estado"),
		ExpressionAttributeNames: map[string]string{
			"#estado": "estado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estado": intValue(int64(estado)),
		},
	})

	items := make([]entities.OrdenServicio, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it ordenServicioItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromOrdenServicioItem(it))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *OrdenServicioDynamoRepository) UpdateEstado(ctx context.Context, id int64, change entities.OrdenStateChange) (entities.OrdenServicio, error) {
	expr := "SET #estado = :to, #updated_at = :now, #fecha = :now"
	names := map[string]string{
		"#id":         "id",
		"#estado":     "estado",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":         intValue(int64(change.To)),
		":en_proceso": intValue(int64(entities.EstadoOrdenEnProceso)),
		":now":        stringValue(formatTime(change.At)),
	}
	switch change.To {
	case entities.EstadoOrdenCancelada:
		names["#fecha"] = "fecha_cancelacion"
		expr += ", #motivo = :motivo"
		names["#motivo"] = "motivo_cancelacion"
		values[":motivo"] = stringValue(change.Motivo)
	default:
		names["#fecha"] = "fecha_completado"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       numberKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #estado = :en_proceso"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.OrdenServicio{}, conditionFailed(err)
	}
	if len(out.Attributes) == 0 {
		return entities.OrdenServicio{}, nil
	}
	var it ordenServicioItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OrdenServicio{}, err
	}
	return fromOrdenServicioItem(it), nil
}

// Update replaces the stored order if it is still EnProceso and nobody wrote
// it since prevUpdatedAt.
func (r *OrdenServicioDynamoRepository) Update(ctx context.Context, o entities.OrdenServicio, prevUpdatedAt time.Time) (entities.OrdenServicio, error) {
	av, err := attributevalue.MarshalMap(toOrdenServicioItem(o))
	if err != nil {
		return entities.OrdenServicio{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #estado = :en_proceso AND #updated_at = :prev"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#estado":     "estado",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":en_proceso": intValue(int64(entities.EstadoOrdenEnProceso)),
			":prev":       stringValue(formatTime(prevUpdatedAt)),
		},
	})
	if err != nil {
		return entities.OrdenServicio{}, conditionFailed(err)
	}
	return o, nil
}

func toLadoItem(l entities.LadoOrden) ladoItem {
	return ladoItem{IDODF: l.IDODF, Puerto: l.Puerto, FTP: l.FTP, CID: l.CID, Distancia: l.Distancia}
}

func fromLadoItem(it ladoItem) entities.LadoOrden {
	return entities.LadoOrden{IDODF: it.IDODF, Puerto: it.Puerto, FTP: it.FTP, CID: it.CID, Distancia: it.Distancia}
}

func toOrdenServicioItem(o entities.OrdenServicio) ordenServicioItem {
	return ordenServicioItem{
		ID:                  o.ID,
		NumeroOrden:         o.NumeroOrden,
		IDViabilidad:        o.IDViabilidad,
		Estado:              int(o.Estado),
		PuntoA:              toPuntoItem(o.PuntoA),
		PuntoZ:              toPuntoItem(o.PuntoZ),
		IDEmpresa:           o.IDEmpresa,
		IDEmpresaConexion:   o.IDEmpresaConexion,
		IDTipoConexion:      o.IDTipoConexion,
		IDTipoEnlace:        o.IDTipoEnlace,
		MRCVenta:            o.MRCVenta,
		NRCVenta:            o.NRCVenta,
		MRCCosto:            o.MRCCosto,
		NRCCosto:            o.NRCCosto,
		LadoA:               toLadoItem(o.LadoA),
		LadoZ:               toLadoItem(o.LadoZ),
		DescripcionServicio: o.DescripcionServicio,
		Observaciones:       o.Observaciones,
		MotivoCancelacion:   o.MotivoCancelacion,
		FechaAprobacion:     formatTime(o.FechaAprobacion),
		FechaCreacion:       formatTime(o.FechaCreacion),
		FechaActivacion:     formatTimePtr(o.FechaActivacion),
		FechaCompletado:     formatTimePtr(o.FechaCompletado),
		FechaCancelacion:    formatTimePtr(o.FechaCancelacion),
		UpdatedAt:           formatTime(o.UpdatedAt),
	}
}

func fromOrdenServicioItem(it ordenServicioItem) entities.OrdenServicio {
	return entities.OrdenServicio{
		ID:                  it.ID,
		NumeroOrden:         it.NumeroOrden,
		IDViabilidad:        it.IDViabilidad,
		Estado:              entities.EstadoOrden(it.Estado),
		PuntoA:              fromPuntoItem(it.PuntoA),
		PuntoZ:              fromPuntoItem(it.PuntoZ),
		IDEmpresa:           it.IDEmpresa,
		IDEmpresaConexion:   it.IDEmpresaConexion,
		IDTipoConexion:      it.IDTipoConexion,
		IDTipoEnlace:        it.IDTipoEnlace,
		MRCVenta:            it.MRCVenta,
		NRCVenta:            it.NRCVenta,
		MRCCosto:            it.MRCCosto,
		NRCCosto:            it.NRCCosto,
		LadoA:               fromLadoItem(it.LadoA),
		LadoZ:               fromLadoItem(it.LadoZ),
		DescripcionServicio: it.DescripcionServicio,
		Observaciones:       it.Observaciones,
		MotivoCancelacion:   it.MotivoCancelacion,
		FechaAprobacion:     parseTime(it.FechaAprobacion),
		FechaCreacion:       parseTime(it.FechaCreacion),
		FechaActivacion:     parseTimePtr(it.FechaActivacion),
		FechaCompletado:     parseTimePtr(it.FechaCompletado),
		FechaCancelacion:    parseTimePtr(it.FechaCancelacion),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
