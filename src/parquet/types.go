package parquet

import "github.com/BielosX/wombat/pokepedia/src/pokepedia"

// MoveGeneration is one exported row: a move's stats from one generation on.
type MoveGeneration struct {
	MoveId      int32  `parquet:"name=move_id, type=INT32"`
	Name        string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	RawName     string `parquet:"name=raw_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Generation  int32  `parquet:"name=generation, type=INT32"`
	Accuracy    *int32 `parquet:"name=accuracy, type=INT32, repetitiontype=OPTIONAL"`
	Power       *int32 `parquet:"name=power, type=INT32, repetitiontype=OPTIONAL"`
	PP          int32  `parquet:"name=pp, type=INT32"`
	Type        string `parquet:"name=type, type=BYTE_ARRAY, convertedtype=UTF8"`
	DamageClass string `parquet:"name=damage_class, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func optionalInt32(value int, ok bool) *int32 {
	if !ok {
		return nil
	}
	v := int32(value)
	return &v
}

// ToMoveGenerations flattens a move into one row per recorded generation, in canonical order.
func ToMoveGenerations(move pokepedia.Move) []MoveGeneration {
	records := move.Records()
	result := make([]MoveGeneration, 0, len(records))
	for _, record := range records {
		accuracy, hasAccuracy := record.Accuracy()
		power, hasPower := record.Power()
		result = append(result, MoveGeneration{
			MoveId:      int32(move.Id()),
			Name:        move.Name(),
			RawName:     move.RawName(),
			Generation:  int32(record.Generation().Number()),
			Accuracy:    optionalInt32(accuracy, hasAccuracy),
			Power:       optionalInt32(power, hasPower),
			PP:          int32(record.PP()),
			Type:        record.ElementType().Code(),
			DamageClass: record.DamageClass().Code(),
		})
	}
	return result
}
