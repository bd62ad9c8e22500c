package catalog

// The single authoritative position table. Iteration order matters: the
// detector resolves nearest-neighbour ties by the first entry encountered
// here, so the order is part of the contract.
//
// Layout convention: the striker's crease sits at roughly y=44 with the
// keeper behind it (smaller y), the bowler delivers from y=63, and the
// inner fielding circle is centred on (50,50).
var positions = []Position{
	// Fixed roles
	{ID: "keeper", DisplayName: "Wicketkeeper", ShortLabel: "WK", X: 50, Y: 35, Category: CategoryKeeper},
	{ID: "bowler", DisplayName: "Bowler", ShortLabel: "B", X: 50, Y: 63, Category: CategoryBowler},

	// Slip cordon and close catchers behind square
	{ID: "first-slip", DisplayName: "First Slip", ShortLabel: "1S", X: 46, Y: 34, Category: CategorySlip},
	{ID: "second-slip", DisplayName: "Second Slip", ShortLabel: "2S", X: 44, Y: 35, Category: CategorySlip},
	{ID: "third-slip", DisplayName: "Third Slip", ShortLabel: "3S", X: 42, Y: 36, Category: CategorySlip},
	{ID: "gully", DisplayName: "Gully", ShortLabel: "G", X: 37, Y: 39, Category: CategorySlip},
	{ID: "leg-slip", DisplayName: "Leg Slip", ShortLabel: "LS", X: 54, Y: 34, Category: CategorySlip},
	{ID: "leg-gully", DisplayName: "Leg Gully", ShortLabel: "LG", X: 62, Y: 39, Category: CategoryClose},

	// Bat-pad close catchers
	{ID: "silly-point", DisplayName: "Silly Point", ShortLabel: "SP", X: 43, Y: 47, Category: CategoryClose},
	{ID: "silly-mid-off", DisplayName: "Silly Mid-Off", ShortLabel: "SMO", X: 45, Y: 52, Category: CategoryClose},
	{ID: "silly-mid-on", DisplayName: "Silly Mid-On", ShortLabel: "SMN", X: 55, Y: 52, Category: CategoryClose},
	{ID: "short-leg", DisplayName: "Short Leg", ShortLabel: "SL", X: 57, Y: 47, Category: CategoryClose},

	// Ring fielders inside the circle
	{ID: "backward-point", DisplayName: "Backward Point", ShortLabel: "BP", X: 28, Y: 40, Category: CategoryRing},
	{ID: "point", DisplayName: "Point", ShortLabel: "PT", X: 25, Y: 47, Category: CategoryRing},
	{ID: "cover-point", DisplayName: "Cover Point", ShortLabel: "CP", X: 27, Y: 54, Category: CategoryRing},
	{ID: "cover", DisplayName: "Cover", ShortLabel: "C", X: 30, Y: 59, Category: CategoryRing},
	{ID: "extra-cover", DisplayName: "Extra Cover", ShortLabel: "EC", X: 35, Y: 65, Category: CategoryRing},
	{ID: "mid-off", DisplayName: "Mid-Off", ShortLabel: "MO", X: 42, Y: 70, Category: CategoryRing},
	{ID: "mid-on", DisplayName: "Mid-On", ShortLabel: "MN", X: 58, Y: 70, Category: CategoryRing},
	{ID: "midwicket", DisplayName: "Midwicket", ShortLabel: "MW", X: 68, Y: 60, Category: CategoryRing},
	{ID: "square-leg", DisplayName: "Square Leg", ShortLabel: "SQ", X: 74, Y: 47, Category: CategoryRing},
	{ID: "backward-square-leg", DisplayName: "Backward Square Leg", ShortLabel: "BSL", X: 71, Y: 40, Category: CategoryRing},

	// Boundary riders
	{ID: "third-man", DisplayName: "Third Man", ShortLabel: "TM", X: 30, Y: 13, Category: CategoryBoundary},
	{ID: "fine-leg", DisplayName: "Fine Leg", ShortLabel: "FL", X: 70, Y: 13, Category: CategoryBoundary},
	{ID: "deep-backward-point", DisplayName: "Deep Backward Point", ShortLabel: "DBP", X: 10, Y: 33, Category: CategoryBoundary},
	{ID: "deep-point", DisplayName: "Deep Point", ShortLabel: "DP", X: 6, Y: 47, Category: CategoryBoundary},
	{ID: "deep-cover", DisplayName: "Deep Cover", ShortLabel: "DC", X: 12, Y: 68, Category: CategoryBoundary},
	{ID: "deep-extra-cover", DisplayName: "Deep Extra Cover", ShortLabel: "DEC", X: 22, Y: 80, Category: CategoryBoundary},
	{ID: "long-off", DisplayName: "Long-Off", ShortLabel: "LO", X: 40, Y: 93, Category: CategoryBoundary},
	{ID: "long-on", DisplayName: "Long-On", ShortLabel: "LN", X: 60, Y: 93, Category: CategoryBoundary},
	{ID: "deep-midwicket", DisplayName: "Deep Midwicket", ShortLabel: "DMW", X: 80, Y: 79, Category: CategoryBoundary},
	{ID: "deep-square-leg", DisplayName: "Deep Square Leg", ShortLabel: "DSL", X: 93, Y: 48, Category: CategoryBoundary},
	{ID: "deep-fine-leg", DisplayName: "Deep Fine Leg", ShortLabel: "DFL", X: 82, Y: 18, Category: CategoryBoundary},
}
