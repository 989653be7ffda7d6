package lights

import (
	"strconv"

	"infinite-lights/internal/core"
)

// Parameters lists the options for display.
func (o Options) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Road",
			Params: []core.Parameter{
				floatParam("length", "Length", o.Length),
				floatParam("road_width", "Road width", o.RoadWidth),
				floatParam("island_width", "Island width", o.IslandWidth),
				intParam("lanes_per_road", "Lanes per road", o.LanesPerRoad),
			},
		},
		{
			Name: "Lights",
			Params: []core.Parameter{
				intParam("light_pairs", "Light pairs per roadway", o.LightPairsPerRoadWay),
				intParam("side_sticks", "Side light sticks", o.TotalSideLightSticks),
				rangeParam("car_lights_length", "Car light length", o.CarLightsLength),
				rangeParam("car_lights_radius", "Car light radius", o.CarLightsRadius),
				rangeParam("moving_away_speed", "Moving away speed", o.MovingAwaySpeed),
				rangeParam("moving_closer_speed", "Moving closer speed", o.MovingCloserSpeed),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: formatFloat(value)}
}

func rangeParam(key, label string, value Value) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeRange, Value: value.String()}
}
