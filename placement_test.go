package rectarena_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/rectarena"
	"github.com/vkngwrapper/rectarena/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestDefaultPlacements(t *testing.T) {
	placements := rectarena.DefaultPlacements()

	var names []string
	for _, placement := range placements {
		names = append(names, placement.String())
	}
	require.Equal(t, []string{"ExactFit", "WidthMatch", "HeightMatch", "GeneralFit"}, names)

	placements[0] = nil
	require.NotNil(t, rectarena.DefaultPlacements()[0])
}

func TestCustomPlacementTriedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	custom := mocks.NewMockPlacement(ctrl)
	unused := mocks.NewMockPlacement(ctrl)

	whole := rectarena.Rectangle{Width: 10, Height: 10}
	custom.EXPECT().String().Return("BottomRight").AnyTimes()
	custom.EXPECT().Fits(whole, uint32(4), uint32(4)).Return(true)
	custom.EXPECT().Split(whole, uint32(4), uint32(4)).Return(
		rectarena.Rectangle{X: 6, Y: 6, Width: 4, Height: 4},
		[]rectarena.Rectangle{
			{X: 0, Y: 0, Width: 6, Height: 10},
			{X: 6, Y: 0, Width: 4, Height: 6},
		})

	arena := rectarena.NewWithOptions(10, 10, rectarena.CreateOptions{
		Placements: []rectarena.Placement{custom, unused},
	})

	rect, err := arena.Allocate(4, 4)
	require.NoError(t, err)
	require.Equal(t, rectarena.Rectangle{X: 6, Y: 6, Width: 4, Height: 4}, rect)
	require.Equal(t, 2, arena.FreeRegionsCount())
	require.NoError(t, arena.Validate())
}

func TestCustomPlacementFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	never := mocks.NewMockPlacement(ctrl)
	never.EXPECT().Fits(gomock.Any(), uint32(3), uint32(2)).Return(false).AnyTimes()

	arena := rectarena.NewWithOptions(10, 10, rectarena.CreateOptions{
		Placements: []rectarena.Placement{never, rectarena.PlacementGeneralFit},
	})

	rect, err := arena.Allocate(3, 2)
	require.NoError(t, err)
	require.Equal(t, rectarena.Rectangle{X: 0, Y: 0, Width: 3, Height: 2}, rect)
}

func TestCustomPlacementNoCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	never := mocks.NewMockPlacement(ctrl)
	never.EXPECT().Fits(gomock.Any(), gomock.Any(), gomock.Any()).Return(false).AnyTimes()

	arena := rectarena.NewWithOptions(10, 10, rectarena.CreateOptions{
		Placements: []rectarena.Placement{never},
	})

	_, err := arena.Allocate(3, 2)
	require.ErrorIs(t, err, rectarena.ErrOutOfSpace)
}

func TestInvalidSplitLeavesArenaUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := mocks.NewMockPlacement(ctrl)
	broken.EXPECT().String().Return("Broken").AnyTimes()
	broken.EXPECT().Fits(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	broken.EXPECT().Split(gomock.Any(), uint32(4), uint32(4)).Return(
		rectarena.Rectangle{X: 0, Y: 0, Width: 4, Height: 4},
		[]rectarena.Rectangle{{X: 4, Y: 0, Width: 6, Height: 10}})

	arena := rectarena.NewWithOptions(10, 10, rectarena.CreateOptions{
		Placements: []rectarena.Placement{broken},
	})

	_, err := arena.Allocate(4, 4)
	require.Error(t, err)
	_, isArenaError := rectarena.KindOf(err)
	require.False(t, isArenaError)

	require.Equal(t, 0, arena.AllocationCount())
	require.Equal(t, 1, arena.FreeRegionsCount())
	require.NoError(t, arena.Validate())
}
