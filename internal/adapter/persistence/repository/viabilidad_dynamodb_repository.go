package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultViabilidadesTableName = "viabilidades"
	viabilidadesProcesoIndex     = "id_proceso_viabilidad-index"

	// BatchGetItem accepts at most 100 keys per call.
	batchGetLimit = 100
	// Unprocessed keys are retried this many times before giving up.
	batchGetRetries = 3
	batchGetMaxWait = time.Second
)

type puntoItem struct {
	IDAreaDesarrollo int64   `dynamodbav:"id_area_desarrollo"`
	IDUbicacion      int64   `dynamodbav:"id_ubicacion"`
	IDModulo         int64   `dynamodbav:"id_modulo"`
	Latitud          float64 `dynamodbav:"latitud"`
	Longitud         float64 `dynamodbav:"longitud"`
}

type viabilidadItem struct {
	ID                int64     `dynamodbav:"id"`
	Nombre            string    `dynamodbav:"nombre"`
	NumeroDocumento   string    `dynamodbav:"numero_documento"`
	Proceso           int       `dynamodbav:"id_proceso_viabilidad"`
	Cancelada         bool      `dynamodbav:"cancelada"`
	PuntoA            puntoItem `dynamodbav:"punto_a"`
	PuntoZ            puntoItem `dynamodbav:"punto_z"`
	IDEmpresa         int64     `dynamodbav:"id_empresa"`
	IDEmpresaConexion int64     `dynamodbav:"id_empresa_conexion"`
	IDTipoConexion    int64     `dynamodbav:"id_tipo_conexion"`
	IDTipoEnlace      int64     `dynamodbav:"id_tipo_enlace"`
	MRC               float64   `dynamodbav:"mrc"`
	NRC               float64   `dynamodbav:"nrc"`
	MRCCosto          float64   `dynamodbav:"mrc_costo"`
	NRCCosto          float64   `dynamodbav:"nrc_costo"`
	Observaciones     string    `dynamodbav:"observaciones"`
	MotivoCancelacion string    `dynamodbav:"motivo_cancelacion,omitempty"`
	IDOrdenServicio   int64     `dynamodbav:"id_orden_servicio"`
	FechaCreacion     string    `dynamodbav:"fecha_creacion"`
	FechaVencimiento  string    `dynamodbav:"fecha_vencimiento"`
	UpdatedAt         string    `dynamodbav:"updated_at"`
}

// ViabilidadDynamoRepository persists the viability ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: id_proceso_viabilidad-index (PK: id_proceso_viabilidad)
//
// id_orden_servicio is always written (0 while unset) so the order
// transaction can condition on it.

type ViabilidadDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	backoff   retry.BackoffDelayer
}

var _ interfaces.IViabilidadRepository = (*ViabilidadDynamoRepository)(nil)

func NewViabilidadDynamoRepository(ddb DynamoAPI, table string) *ViabilidadDynamoRepository {
	return &ViabilidadDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "VIABILITIES_TABLE", defaultViabilidadesTableName),
		backoff:   retry.NewExponentialJitterBackoff(batchGetMaxWait),
	}
}

func (r *ViabilidadDynamoRepository) Create(ctx context.Context, v entities.Viabilidad) (entities.Viabilidad, error) {
	av, err := attributevalue.MarshalMap(toViabilidadItem(v))
	if err != nil {
		return entities.Viabilidad{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Viabilidad{}, conditionFailed(err)
	}
	return v, nil
}

func (r *ViabilidadDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Viabilidad, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Viabilidad{}, err
	}
	if len(out.Item) == 0 {
		return entities.Viabilidad{}, nil
	}

	var it viabilidadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Viabilidad{}, err
	}
	return fromViabilidadItem(it), nil
}

// GetMany resolves ids in batches. Ids that are not stored are simply absent
// from the result. Keys DynamoDB leaves unprocessed are retried with jittered
// backoff; if some remain after batchGetRetries the call fails.
func (r *ViabilidadDynamoRepository) GetMany(ctx context.Context, ids []int64) (map[int64]entities.Viabilidad, error) {
	result := make(map[int64]entities.Viabilidad, len(ids))
	unique := dedupeIDs(ids)

	for start := 0; start < len(unique); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(unique) {
			end = len(unique)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range unique[start:end] {
			keys = append(keys, numberKey(id))
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt > 0 {
				if attempt > batchGetRetries {
					return nil, fmt.Errorf("batch get %s: %d keys still unprocessed after %d retries",
						r.tableName, len(request[r.tableName].Keys), batchGetRetries)
				}
				if err := r.wait(ctx, attempt); err != nil {
					return nil, err
				}
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it viabilidadItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				result[it.ID] = fromViabilidadItem(it)
			}
			request = out.UnprocessedKeys
		}
	}
	return result, nil
}

func (r *ViabilidadDynamoRepository) wait(ctx context.Context, attempt int) error {
	d, err := r.backoff.BackoffDelay(attempt, nil)
	if err != nil {
		return err
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *ViabilidadDynamoRepository) ListByProceso(ctx context.Context, proceso entities.ProcesoViabilidad, filter entities.ViabilidadFilter) ([]entities.Viabilidad, error) {
	names := map[string]string{"#proceso": "id_proceso_viabilidad"}
	values := map[string]types.AttributeValue{":proceso": intValue(int64(proceso))}

	var conds []string
	if !filter.IncluirCanceladas {
		conds = append(conds, "#cancelada = :false")
		names["#cancelada"] = "cancelada"
		values[":false"] = boolValue(false)
	}
	if filter.IDEmpresa > 0 {
		conds = append(conds, "#id_empresa = :id_empresa")
		names["#id_empresa"] = "id_empresa"
		values[":id_empresa"] = intValue(filter.IDEmpresa)
	}
	if filter.IDTipoEnlace > 0 {
		conds = append(conds, "#id_tipo_enlace = :id_tipo_enlace")
		names["#id_tipo_enlace"] = "id_tipo_enlace"
		values[":id_tipo_enlace"] = intValue(filter.IDTipoEnlace)
	}
	if filter.SinOrden {
		conds = append(conds, "#id_orden_servicio = :zero")
		names["#id_orden_servicio"] = "id_orden_servicio"
		values[":zero"] = intValue(0)
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(viabilidadesProcesoIndex),
		KeyConditionExpression:    aws.String("#proceso = :proceso"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
	}

	items := make([]entities.Viabilidad, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it viabilidadItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromViabilidadItem(it))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// UpdateProceso writes a ledger transition if the stored state is still from
// and the record has not been cancelled.
func (r *ViabilidadDynamoRepository) UpdateProceso(ctx context.Context, id int64, from entities.ProcesoViabilidad, change entities.ViabilidadStateChange) (entities.Viabilidad, error) {
	expr := "SET #proceso = :to, #updated_at = :now"
	names := map[string]string{
		"#id":         "id",
		"#proceso":    "id_proceso_viabilidad",
		"#cancelada":  "cancelada",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":    intValue(int64(change.To)),
		":from":  intValue(int64(from)),
		":false": boolValue(false),
		":now":   stringValue(formatTime(change.At)),
	}
	if change.Cancelada {
		expr += ", #cancelada = :true, #motivo = :motivo"
		names["#motivo"] = "motivo_cancelacion"
		values[":true"] = boolValue(true)
		values[":motivo"] = stringValue(change.Motivo)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       numberKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #proceso = :from AND #cancelada = :false"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Viabilidad{}, conditionFailed(err)
	}
	if len(out.Attributes) == 0 {
		return entities.Viabilidad{}, nil
	}
	var it viabilidadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Viabilidad{}, err
	}
	return fromViabilidadItem(it), nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toPuntoItem(p entities.Punto) puntoItem {
	return puntoItem{
		IDAreaDesarrollo: p.IDAreaDesarrollo,
		IDUbicacion:      p.IDUbicacion,
		IDModulo:         p.IDModulo,
		Latitud:          p.Latitud,
		Longitud:         p.Longitud,
	}
}

func fromPuntoItem(it puntoItem) entities.Punto {
	return entities.Punto{
		IDAreaDesarrollo: it.IDAreaDesarrollo,
		IDUbicacion:      it.IDUbicacion,
		IDModulo:         it.IDModulo,
		Latitud:          it.Latitud,
		Longitud:         it.Longitud,
	}
}

func toViabilidadItem(v entities.Viabilidad) viabilidadItem {
	return viabilidadItem{
		ID:                v.ID,
		Nombre:            v.Nombre,
		NumeroDocumento:   v.NumeroDocumento,
		Proceso:           int(v.Proceso),
		Cancelada:         v.Cancelada,
		PuntoA:            toPuntoItem(v.PuntoA),
		PuntoZ:            toPuntoItem(v.PuntoZ),
		IDEmpresa:         v.IDEmpresa,
		IDEmpresaConexion: v.IDEmpresaConexion,
		IDTipoConexion:    v.IDTipoConexion,
		IDTipoEnlace:      v.IDTipoEnlace,
		MRC:               v.MRC,
		NRC:               v.NRC,
		MRCCosto:          v.MRCCosto,
		NRCCosto:          v.NRCCosto,
		Observaciones:     v.Observaciones,
		MotivoCancelacion: v.MotivoCancelacion,
		IDOrdenServicio:   v.IDOrdenServicio,
		FechaCreacion:     formatTime(v.FechaCreacion),
		FechaVencimiento:  formatTime(v.FechaVencimiento),
		UpdatedAt:         formatTime(v.UpdatedAt),
	}
}

func fromViabilidadItem(it viabilidadItem) entities.Viabilidad {
	return entities.Viabilidad{
		ID:                it.ID,
		Nombre:            it.Nombre,
		NumeroDocumento:   it.NumeroDocumento,
		Proceso:           entities.ProcesoViabilidad(it.Proceso),
		Cancelada:         it.Cancelada,
		PuntoA:            fromPuntoItem(it.PuntoA),
		PuntoZ:            fromPuntoItem(it.PuntoZ),
		IDEmpresa:         it.IDEmpresa,
		IDEmpresaConexion: it.IDEmpresaConexion,
		IDTipoConexion:    it.IDTipoConexion,
		IDTipoEnlace:      it.IDTipoEnlace,
		MRC:               it.MRC,
		NRC:               it.NRC,
		MRCCosto:          it.MRCCosto,
		NRCCosto:          it.NRCCosto,
		Observaciones:     it.Observaciones,
		MotivoCancelacion: it.MotivoCancelacion,
		IDOrdenServicio:   it.IDOrdenServicio,
		FechaCreacion:     parseTime(it.FechaCreacion),
		FechaVencimiento:  parseTime(it.FechaVencimiento),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
