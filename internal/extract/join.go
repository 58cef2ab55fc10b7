package extract

// JoinWeather backfills Year and CountDate on the weather rows by count
// index. The participants/effort table is preferred; the header metadata
// fills whatever is still empty afterwards (e.g. the most recent count,
// which has a header cell but no participants row yet). Row order is
// preserved and the input slice is not modified.
func JoinWeather(weather []WeatherRow, pe []ParticipantsEffortRow, meta []CountMetadata) []WeatherRow {
	peByIndex := make(map[int]ParticipantsEffortRow, len(pe))
	for _, row := range pe {
		if _, ok := peByIndex[row.CountIndex]; !ok {
			peByIndex[row.CountIndex] = row
		}
	}
	metaByIndex := make(map[int]CountMetadata, len(meta))
	for _, md := range meta {
		if _, ok := metaByIndex[md.CountIndex]; !ok {
			metaByIndex[md.CountIndex] = md
		}
	}

	out := make([]WeatherRow, len(weather))
	copy(out, weather)
	for i := range out {
		if p, ok := peByIndex[out[i].CountIndex]; ok {
			if p.Year != nil {
				year := *p.Year
				out[i].Year = &year
			}
			out[i].CountDate = p.CountDate
		}
		if md, ok := metaByIndex[out[i].CountIndex]; ok {
			if out[i].Year == nil {
				year := md.Year
				out[i].Year = &year
			}
			if out[i].CountDate == "" {
				out[i].CountDate = md.CountDate
			}
		}
	}
	return out
}
