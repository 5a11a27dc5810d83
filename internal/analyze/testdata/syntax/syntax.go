package syntax

func broken( {
